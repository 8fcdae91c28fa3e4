// Package config provides environment-backed configuration for the scan service.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Default values applied when the corresponding variable is unset.
const (
	DefaultPort         = 8080
	DefaultGithubAPIURL = "https://api.github.com"
	DefaultScanTimeout  = 60 * time.Second
)

// Config holds the service configuration. All values come from the
// environment; a .env file is loaded by the CLI entry point before this
// package reads anything.
type Config struct {
	Port         int           // PROOFMAP_PORT
	GithubToken  string        // GITHUB_TOKEN (optional; unauthenticated quota applies without it)
	GithubAPIURL string        // GITHUB_API_URL
	ScanTimeout  time.Duration // SCAN_TIMEOUT (request-scoped deadline for a whole scan)
	LogJSON      bool          // LOG_JSON
	Debug        bool          // DEBUG
}

// FromEnv builds a Config from environment variables, applying defaults
// for anything unset.
func FromEnv() *Config {
	return &Config{
		Port:         getEnvInt("PROOFMAP_PORT", DefaultPort),
		GithubToken:  getEnvString("GITHUB_TOKEN", ""),
		GithubAPIURL: getEnvString("GITHUB_API_URL", DefaultGithubAPIURL),
		ScanTimeout:  getEnvDuration("SCAN_TIMEOUT", DefaultScanTimeout),
		LogJSON:      getEnvBool("LOG_JSON", false),
		Debug:        getEnvBool("DEBUG", false),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.ScanTimeout <= 0 {
		return fmt.Errorf("config error: scan timeout must be positive")
	}
	u, err := url.Parse(c.GithubAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config error: invalid GitHub API URL %q", c.GithubAPIURL)
	}
	return nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
