package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snehagrian/proofmap/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scan result JSON file against the API contract schema",
	Long: `Validate a saved scan result JSON file against the scan_result schema.

Useful for checking results produced by older builds or external tooling
before feeding them to anything that renders them.`,
	RunE: runValidate,
}

var (
	validateInput  string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to scan result JSON file (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "schemas/scan_result.schema.json", "Schema file to validate against")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(validateInput); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", validateInput)
	}

	schemaPath := schemas.ResolveSchemaPath(validateSchema)
	if schemaPath == "" {
		return fmt.Errorf("schema not found: %s", validateSchema)
	}

	if err := schemas.ValidateJSON(schemaPath, validateInput); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "%s is not a valid scan result:\n", validateInput)
			for _, fieldErr := range validationErr.Errors {
				_, _ = fmt.Fprintf(os.Stderr, "  - %s: %s\n", fieldErr.Field, fieldErr.Message)
			}
			return fmt.Errorf("validation failed with %d error(s)", len(validationErr.Errors))
		}
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s validates against %s\n", validateInput, validateSchema)
	return nil
}
