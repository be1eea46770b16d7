package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// Feed filenames encode the store and observation date. The store segment
// cannot contain underscores, which keeps the two patterns disjoint.
var (
	priceFeedPattern    = regexp.MustCompile(`^([A-Za-z0-9.-]+)_(\d{4}-\d{2}-\d{2})\.(csv|xlsx)$`)
	discountFeedPattern = regexp.MustCompile(`^([A-Za-z0-9.-]+)_discounts_(\d{4}-\d{2}-\d{2})\.(csv|xlsx)$`)
)

// Report summarizes one ingestion run.
type Report struct {
	Files     int
	Offers    int
	Discounts int
	Skipped   []RowError
}

// Loader scans a feed directory and builds catalog snapshots from it.
type Loader struct {
	dir    string
	logger zerolog.Logger
}

// NewLoader creates a loader over a feed directory.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:    dir,
		logger: log.With().Str("component", "ingest").Logger(),
	}
}

// Load reads every recognized feed file in the directory concurrently and
// merges the results into one immutable snapshot. Unrecognized filenames are
// ignored; malformed rows are skipped and reported, a row never aborts the
// run. A file that cannot be read or decoded fails the whole load.
func (l *Loader) Load(ctx context.Context) (*catalog.Snapshot, *Report, error) {
	start := time.Now()

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read feed dir %s: %w", l.dir, err)
	}

	var (
		mu        sync.Mutex
		offers    []catalog.Offer
		discounts []catalog.DiscountWindow
		report    Report
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		// Discounts first: the price pattern would not match a
		// discounts filename, but the order makes that explicit.
		if m := discountFeedPattern.FindStringSubmatch(name); m != nil {
			mu.Lock()
			report.Files++
			mu.Unlock()
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				windows, skipped, err := l.loadDiscountFeed(name, m[1])
				if err != nil {
					return err
				}
				mu.Lock()
				discounts = append(discounts, windows...)
				report.Skipped = append(report.Skipped, skipped...)
				mu.Unlock()
				return nil
			})
			continue
		}

		if m := priceFeedPattern.FindStringSubmatch(name); m != nil {
			date, err := catalog.ParseDay(m[2])
			if err != nil {
				return nil, nil, fmt.Errorf("feed %s: bad date in filename: %w", name, err)
			}
			mu.Lock()
			report.Files++
			mu.Unlock()
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				feed, skipped, err := l.loadPriceFeed(name, m[1], date)
				if err != nil {
					return err
				}
				mu.Lock()
				offers = append(offers, feed...)
				report.Skipped = append(report.Skipped, skipped...)
				mu.Unlock()
				return nil
			})
			continue
		}

		l.logger.Debug().Str("file", name).Msg("ignoring unrecognized file in feed dir")
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	report.Offers = len(offers)
	report.Discounts = len(discounts)
	for _, skip := range report.Skipped {
		l.logger.Warn().Str("file", skip.File).Int("row", skip.Row).Msg(skip.Message)
	}

	snap := catalog.NewSnapshot(offers, discounts)
	recordLoad(snap, len(report.Skipped), time.Since(start))
	l.logger.Info().
		Int("files", report.Files).
		Int("offers", report.Offers).
		Int("discounts", report.Discounts).
		Int("skipped_rows", len(report.Skipped)).
		Dur("elapsed", time.Since(start)).
		Msg("feed load complete")
	return snap, &report, nil
}

func (l *Loader) loadPriceFeed(name, store string, observedOn time.Time) ([]catalog.Offer, []RowError, error) {
	rows, err := l.readRows(name)
	if err != nil {
		return nil, nil, err
	}
	offers, skipped := parsePriceRows(rows, name, store, observedOn)
	return offers, skipped, nil
}

func (l *Loader) loadDiscountFeed(name, store string) ([]catalog.DiscountWindow, []RowError, error) {
	rows, err := l.readRows(name)
	if err != nil {
		return nil, nil, err
	}
	windows, skipped := parseDiscountRows(rows, name, store)
	return windows, skipped, nil
}

// readRows reads a feed file and returns its raw data rows, dispatching on
// the extension. CSV feeds pass through encoding detection first.
func (l *Loader) readRows(name string) ([][]string, error) {
	content, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read feed %s: %w", name, err)
	}

	if strings.HasSuffix(name, ".xlsx") {
		rows, err := readWorkbook(content)
		if err != nil {
			return nil, fmt.Errorf("feed %s: %w", name, err)
		}
		return rows, nil
	}

	decoded, err := Decode(content, DetectEncoding(content))
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", name, err)
	}
	rows, err := readSeparated(decoded)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", name, err)
	}
	return rows, nil
}
