package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcus/applicant-intake/internal/store"
)

var pruneDays int

var pruneCmd = &cobra.Command{
	Use:   "prune-errors",
	Short: "Delete error log rows older than the retention window",
	RunE:  runPrune,
}

func init() {
	pruneCmd.Flags().IntVar(&pruneDays, "days", 30, "Retention window in days")
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(_ *cobra.Command, _ []string) error {
	if pruneDays <= 0 {
		return fmt.Errorf("--days must be positive")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	cutoff := time.Now().AddDate(0, 0, -pruneDays)
	removed, err := db.PruneErrorLogs(ctx, cutoff)
	if err != nil {
		return err
	}

	fmt.Printf("Pruned %d error log rows older than %s\n", removed, cutoff.Format(time.RFC3339))
	return nil
}
