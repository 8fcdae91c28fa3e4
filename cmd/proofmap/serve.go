package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snehagrian/proofmap/internal/config"
	"github.com/snehagrian/proofmap/internal/logger"
	"github.com/snehagrian/proofmap/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scan HTTP server",
	Long: `Start the HTTP server exposing POST /api/scan and GET /health.

Configuration comes from environment variables (PROOFMAP_PORT, GITHUB_TOKEN,
GITHUB_API_URL, SCAN_TIMEOUT, LOG_JSON, DEBUG); a .env file in the working
directory is loaded first.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PROOFMAP_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if servePort > 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	return srv.Start()
}
