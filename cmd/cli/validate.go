package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pricepulse/comparator-service/internal/ingest"
)

var validateOutput string

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load a feed directory and report counts and parse errors",
	Long: `Load every recognized feed file in the data directory, build a
snapshot, and report how many files, offers, and discounts were loaded and
which rows were skipped as malformed.`,
	Example: `  comparator validate --data-dir ./data/feeds
  comparator validate --data-dir ./data/feeds --output json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateOutput, "output", "table", "Output format: table or json")
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir, err := feedDir()
	if err != nil {
		return err
	}

	snap, report, err := ingest.NewLoader(dir).Load(context.Background())
	if err != nil {
		return fmt.Errorf("feed load failed: %w", err)
	}

	if validateOutput == "json" {
		out := struct {
			Files     int               `json:"files"`
			Offers    int               `json:"offers"`
			Discounts int               `json:"discounts"`
			Skipped   []ingest.RowError `json:"skipped"`
		}{report.Files, report.Offers, report.Discounts, report.Skipped}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Files:\t%d\n", report.Files)
	fmt.Fprintf(w, "Offers:\t%d\n", snap.NumOffers())
	fmt.Fprintf(w, "Discounts:\t%d\n", snap.NumDiscounts())
	fmt.Fprintf(w, "Skipped rows:\t%d\n", len(report.Skipped))
	w.Flush()

	for _, skip := range report.Skipped {
		fmt.Printf("  %s\n", skip)
	}
	return nil
}
