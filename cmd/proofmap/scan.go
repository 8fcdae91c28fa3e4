package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/snehagrian/proofmap/internal/config"
	"github.com/snehagrian/proofmap/internal/github"
	"github.com/snehagrian/proofmap/internal/ingestion"
	"github.com/snehagrian/proofmap/internal/logger"
	"github.com/snehagrian/proofmap/internal/observability"
	"github.com/snehagrian/proofmap/internal/schemas"
	"github.com/snehagrian/proofmap/internal/server"
	"github.com/snehagrian/proofmap/internal/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a one-shot proof scan and print the report",
	Long: `Scan a GitHub user's public repositories for evidence of the skills
claimed in a resume and print a proof report to the terminal.

The resume file may be plain text or an HTML export. Without --resume the
scan claims no skills, which is useful together with --skill to get
remediation plans only.`,
	RunE: runScan,
}

var (
	scanUser       string
	scanResumeFile string
	scanSkills     []string
	scanOutputFile string
	scanJSON       bool
	scanNoColor    bool
	scanVerbose    bool
)

func init() {
	scanCmd.Flags().StringVarP(&scanUser, "user", "u", "", "GitHub username to scan (required)")
	scanCmd.Flags().StringVarP(&scanResumeFile, "resume", "r", "", "Path to resume file (text or HTML)")
	scanCmd.Flags().StringArrayVarP(&scanSkills, "skill", "s", nil, "Skill to build a remediation plan for (repeatable)")
	scanCmd.Flags().StringVarP(&scanOutputFile, "out", "o", "", "Path to write the scan result JSON to")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Print the scan result as JSON instead of a styled report")
	scanCmd.Flags().BoolVar(&scanNoColor, "no-color", false, "Disable colored output")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	if scanUser == "" {
		return fmt.Errorf("must provide --user")
	}
	if scanResumeFile == "" && len(scanSkills) == 0 {
		return fmt.Errorf("must provide --resume, at least one --skill, or both")
	}

	resumeText := ""
	if scanResumeFile != "" {
		text, err := ingestion.ReadResumeFile(scanResumeFile)
		if err != nil {
			return err
		}
		resumeText = text
	}

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// One-shot runs stay quiet unless asked; the report is the output.
	log := zap.NewNop()
	if scanVerbose {
		verbose, err := logger.New(cfg.LogJSON, true)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer func() { _ = verbose.Sync() }()
		log = verbose
	}

	client, err := github.New(log, cfg.GithubToken)
	if err != nil {
		return err
	}
	client.APIURL = cfg.GithubAPIURL

	svc := server.NewScanService(client, log, cfg.ScanTimeout)

	req := &types.ScanRequest{
		GithubUsername: scanUser,
		ResumeText:     &resumeText,
		SelectedSkills: scanSkills,
	}

	result, err := svc.Scan(context.Background(), req)
	if err != nil {
		return err
	}

	if scanOutputFile != "" {
		if err := writeResultFile(result, scanOutputFile); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Scan result written to %s\n", scanOutputFile)
		if scanJSON {
			return nil
		}
	}

	if scanJSON {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if scanNoColor {
		observability.SetNoColor(true)
	} else {
		observability.AutoDetectColor(os.Stdout)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScanReport(result)
	if len(result.Remediation) > 0 {
		printer.PrintRemediation(result.Remediation)
	}

	return nil
}

// writeResultFile writes the result JSON and validates it against the
// scan_result schema when the schema file can be found. Validation
// failures are fatal; a missing or unreadable schema only warns.
func writeResultFile(result *types.ScanResult, path string) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	schemaPath := schemas.ResolveSchemaPath("schemas/scan_result.schema.json")
	if schemaPath == "" {
		return nil
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("scan result does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}
	return nil
}
