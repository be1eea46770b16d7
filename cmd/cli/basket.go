package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pricepulse/comparator-service/internal/catalog"
	"github.com/pricepulse/comparator-service/internal/engine"
	"github.com/pricepulse/comparator-service/internal/ingest"
)

var basketDate string

// basketCmd represents the basket command
var basketCmd = &cobra.Command{
	Use:   "basket <product>...",
	Short: "Optimize a shopping basket across stores",
	Long: `Resolve each product to the store offering it at the lowest
effective price on the date, and print the per-line picks, the total, and
any cheaper substitution suggestions.`,
	Example: `  comparator basket "lapte zuzu" "paine alba" --data-dir ./data/feeds --date 2025-05-08`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runBasket,
}

func init() {
	rootCmd.AddCommand(basketCmd)

	basketCmd.Flags().StringVar(&basketDate, "date", "", "Evaluation date, YYYY-MM-DD (required)")
	basketCmd.MarkFlagRequired("date")
}

func runBasket(cmd *cobra.Command, args []string) error {
	date, err := catalog.ParseDay(basketDate)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", basketDate, err)
	}

	dir, err := feedDir()
	if err != nil {
		return err
	}
	snap, _, err := ingest.NewLoader(dir).Load(context.Background())
	if err != nil {
		return fmt.Errorf("feed load failed: %w", err)
	}

	res := engine.New(engineConfig()).OptimizeBasket(snap, args, date)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tSTORE\tPRICE")
	for _, item := range res.Items {
		fmt.Fprintf(w, "%s\t%s\t%.2f\n", item.ProductName, item.Store, item.Price)
	}
	fmt.Fprintf(w, "TOTAL\t\t%.2f\n", res.Total)
	w.Flush()

	for _, s := range res.Suggestions {
		fmt.Printf("hint: %s (%s) is %.2f cheaper than %s at %s\n",
			s.SuggestedProductName, s.SuggestedBrand, s.Savings, s.OriginalProductName, s.Store)
	}
	return nil
}
