package catalog

import "time"

// Offer is one store's listed price for one product on one observation date.
// Offers are immutable once loaded; identity for matching purposes is the
// (name, store, observation date) tuple with name and store compared
// case-insensitively.
type Offer struct {
	ProductID       string    // Retailer-assigned product identifier
	Name            string    // Product name as listed in the feed
	Category        string    // Product category (e.g. "lactate")
	Brand           string    // Brand name, may be empty
	PackageQuantity float64   // Package size, must be > 0 for unit-price math
	PackageUnit     string    // Package unit (e.g. "l", "kg", "buc")
	Price           float64   // Listed price, >= 0
	Currency        string    // ISO currency code from the feed
	ObservedOn      time.Time // Calendar date of the price observation
	Store           string    // Store identifier from the feed filename
}

// DiscountWindow is a promotional period for a named product at one store.
// From and To are inclusive calendar dates; windows for the same
// (name, store) pair may overlap in the source data.
type DiscountWindow struct {
	ProductID       string
	Name            string
	Brand           string
	PackageQuantity float64
	PackageUnit     string
	Category        string
	From            time.Time
	To              time.Time
	Percentage      int // 0-100
	Store           string
}

// ActiveOn reports whether the window covers the given date, inclusive on
// both ends.
func (d DiscountWindow) ActiveOn(date time.Time) bool {
	return !dayBefore(date, d.From) && !dayAfter(date, d.To)
}

// dayBefore reports whether a falls on an earlier calendar day than b.
func dayBefore(a, b time.Time) bool {
	return DayKey(a) < DayKey(b)
}

// dayAfter reports whether a falls on a later calendar day than b.
func dayAfter(a, b time.Time) bool {
	return DayKey(a) > DayKey(b)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

const dayLayout = "2006-01-02"

// DayKey formats a timestamp as its ISO-8601 calendar date, the canonical
// form used for index keys and date equality throughout the catalog.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// ParseDay parses an ISO-8601 calendar date (yyyy-MM-dd).
func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, s)
}
