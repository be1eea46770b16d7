package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pricepulse/comparator-service/internal/catalog"
	"github.com/pricepulse/comparator-service/internal/engine"
	"github.com/pricepulse/comparator-service/internal/ingest"
)

var cheapestDate string

// cheapestCmd represents the cheapest command
var cheapestCmd = &cobra.Command{
	Use:   "cheapest <product>",
	Short: "Resolve the store offering a product at the lowest effective price",
	Example: `  comparator cheapest "lapte zuzu" --data-dir ./data/feeds --date 2025-05-08`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheapest,
}

func init() {
	rootCmd.AddCommand(cheapestCmd)

	cheapestCmd.Flags().StringVar(&cheapestDate, "date", "", "Evaluation date, YYYY-MM-DD (required)")
	cheapestCmd.MarkFlagRequired("date")
}

func runCheapest(cmd *cobra.Command, args []string) error {
	product := args[0]
	date, err := catalog.ParseDay(cheapestDate)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", cheapestDate, err)
	}

	dir, err := feedDir()
	if err != nil {
		return err
	}
	snap, _, err := ingest.NewLoader(dir).Load(context.Background())
	if err != nil {
		return fmt.Errorf("feed load failed: %w", err)
	}

	best, ok := engine.New(engineConfig()).CheapestOffer(snap, product, date)
	if !ok {
		return fmt.Errorf("no offers for %q on %s", product, cheapestDate)
	}

	fmt.Printf("%s @ %s: %.2f %s", best.Offer.Name, best.Offer.Store, best.FinalPrice, best.Offer.Currency)
	if best.Savings() > 0 {
		fmt.Printf(" (listed %.2f, saves %.2f)", best.Offer.Price, best.Savings())
	}
	fmt.Println()
	return nil
}

// engineConfig maps the loaded config to engine thresholds, falling back to
// defaults when no config file was found.
func engineConfig() *engine.Config {
	if cfg == nil {
		return nil
	}
	return &engine.Config{
		SimilarityBand:    cfg.Engine.SimilarityBand,
		SubstituteCutoff:  cfg.Engine.SubstituteCutoff,
		BestDiscountLimit: cfg.Engine.BestDiscountLimit,
	}
}
