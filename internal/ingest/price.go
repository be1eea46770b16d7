package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var currencySuffix = regexp.MustCompile(`\s*(RON|LEI|EUR|USD|HRK|KN)\s*$`)

// ParsePrice parses a lenient price string into a float. It tolerates
// currency symbols and suffixes, thousands separators, and either comma or
// dot decimals: "12.99", "12,99", "1.299,00", "1 299,00 lei".
func ParsePrice(value string) (float64, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0, fmt.Errorf("empty price value")
	}

	cleaned = strings.Map(func(r rune) rune {
		switch r {
		case '€', '$', '£', ' ', ' ':
			return -1
		}
		return r
	}, cleaned)
	cleaned = currencySuffix.ReplaceAllString(strings.ToUpper(cleaned), "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric value in %q", value)
	}

	// The rightmost separator is the decimal mark; the other kind, if
	// present, separates thousands.
	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")
	switch {
	case lastComma > lastDot:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case lastDot > lastComma:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", value, err)
	}
	if price < 0 {
		return 0, fmt.Errorf("negative price %q", value)
	}
	return price, nil
}
