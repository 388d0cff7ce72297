// Package main provides the entry point for the applicant intake service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intake",
	Short: "Applicant intake decision service",
	Long:  "Applicant intake ingests a resume plus a job description, scores the semantic match, deduplicates repeat submissions, and dispatches interview invitations above the score threshold.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
