package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "proofmap",
	Short: "Score resume skill claims against public GitHub evidence",
	Long: `ProofMap compares the skills claimed in a resume against evidence mined
from a GitHub user's public repositories and reports a proof score per skill.

Run "proofmap serve" to start the HTTP API, or "proofmap scan" for a
one-shot scan printed to the terminal.`,
}

func main() {
	// Load .env file if it exists (ignore error if it doesn't)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
