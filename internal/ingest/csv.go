package ingest

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// Feed column layouts. Both feeds carry a header row; rows shorter than the
// layout are skipped, extra trailing columns are ignored.
const (
	priceFeedColumns    = 8 // product_id;product_name;product_category;brand;package_quantity;package_unit;price;currency
	discountFeedColumns = 9 // product_id;product_name;brand;package_quantity;package_unit;product_category;from_date;to_date;percentage_of_discount
)

// RowError records one skipped feed row.
type RowError struct {
	File    string
	Row     int
	Message string
}

func (e RowError) String() string {
	return fmt.Sprintf("%s row %d: %s", e.File, e.Row, e.Message)
}

// readSeparated parses decoded feed text into raw rows. Feeds are
// semicolon-separated; the header row is dropped.
func readSeparated(content string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}

// parsePriceRows maps raw price-feed rows to offers. The store and
// observation date come from the feed filename, not the rows.
func parsePriceRows(rows [][]string, file, store string, observedOn time.Time) ([]catalog.Offer, []RowError) {
	offers := make([]catalog.Offer, 0, len(rows))
	var errs []RowError

	for i, row := range rows {
		rowNum := i + 2 // 1-based, after the header
		if isBlankRow(row) {
			continue
		}
		if len(row) < priceFeedColumns {
			errs = append(errs, RowError{file, rowNum, fmt.Sprintf("expected %d columns, got %d", priceFeedColumns, len(row))})
			continue
		}

		qty, err := ParsePrice(row[4])
		if err != nil {
			errs = append(errs, RowError{file, rowNum, fmt.Sprintf("package_quantity: %v", err)})
			continue
		}
		price, err := ParsePrice(row[6])
		if err != nil {
			errs = append(errs, RowError{file, rowNum, fmt.Sprintf("price: %v", err)})
			continue
		}

		offers = append(offers, catalog.Offer{
			ProductID:       strings.TrimSpace(row[0]),
			Name:            strings.TrimSpace(row[1]),
			Category:        strings.TrimSpace(row[2]),
			Brand:           strings.TrimSpace(row[3]),
			PackageQuantity: qty,
			PackageUnit:     strings.TrimSpace(row[5]),
			Price:           price,
			Currency:        strings.TrimSpace(row[7]),
			ObservedOn:      observedOn,
			Store:           store,
		})
	}
	return offers, errs
}

// parseDiscountRows maps raw discount-feed rows to discount windows.
func parseDiscountRows(rows [][]string, file, store string) ([]catalog.DiscountWindow, []RowError) {
	windows := make([]catalog.DiscountWindow, 0, len(rows))
	var errs []RowError

	for i, row := range rows {
		rowNum := i + 2
		if isBlankRow(row) {
			continue
		}
		if len(row) < discountFeedColumns {
			errs = append(errs, RowError{file, rowNum, fmt.Sprintf("expected %d columns, got %d", discountFeedColumns, len(row))})
			continue
		}

		qty, err := ParsePrice(row[3])
		if err != nil {
			errs = append(errs, RowError{file, rowNum, fmt.Sprintf("package_quantity: %v", err)})
			continue
		}
		from, err := catalog.ParseDay(strings.TrimSpace(row[6]))
		if err != nil {
			errs = append(errs, RowError{file, rowNum, fmt.Sprintf("from_date: %v", err)})
			continue
		}
		to, err := catalog.ParseDay(strings.TrimSpace(row[7]))
		if err != nil {
			errs = append(errs, RowError{file, rowNum, fmt.Sprintf("to_date: %v", err)})
			continue
		}
		if to.Before(from) {
			errs = append(errs, RowError{file, rowNum, "to_date before from_date"})
			continue
		}
		pct, err := strconv.Atoi(strings.TrimSpace(row[8]))
		if err != nil || pct < 0 || pct > 100 {
			errs = append(errs, RowError{file, rowNum, fmt.Sprintf("percentage out of range: %q", row[8])})
			continue
		}

		windows = append(windows, catalog.DiscountWindow{
			ProductID:       strings.TrimSpace(row[0]),
			Name:            strings.TrimSpace(row[1]),
			Brand:           strings.TrimSpace(row[2]),
			PackageQuantity: qty,
			PackageUnit:     strings.TrimSpace(row[4]),
			Category:        strings.TrimSpace(row[5]),
			Store:           store,
			From:            from,
			To:              to,
			Percentage:      pct,
		})
	}
	return windows, errs
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
