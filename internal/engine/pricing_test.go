package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// day parses a test date, failing fast on typos in fixtures.
func day(s string) time.Time {
	t, err := catalog.ParseDay(s)
	if err != nil {
		panic("bad test date: " + s)
	}
	return t
}

// offer builds a minimal test offer; category/unit/quantity carry defaults
// usable by substitution tests.
func offer(name, store, date string, price float64) catalog.Offer {
	return catalog.Offer{
		ProductID:       name + "-" + store,
		Name:            name,
		Category:        "lactate",
		Brand:           "Generic",
		PackageQuantity: 1,
		PackageUnit:     "l",
		Price:           price,
		Currency:        "RON",
		ObservedOn:      day(date),
		Store:           store,
	}
}

// discount builds a test discount window.
func discount(name, store, from, to string, pct int) catalog.DiscountWindow {
	return catalog.DiscountWindow{
		ProductID:  name + "-" + store,
		Name:       name,
		Store:      store,
		From:       day(from),
		To:         day(to),
		Percentage: pct,
	}
}

// TestPricedOfferFieldAccess verifies offer fields read both through the
// embedded Offer and directly off the priced value, and pins the derived
// Savings and UnitPrice math.
func TestPricedOfferFieldAccess(t *testing.T) {
	p := PricedOffer{
		Offer:      offer("lapte zuzu", "Lidl", "2025-05-08", 10.0),
		FinalPrice: 7.5,
	}

	assert.Equal(t, "lapte zuzu", p.Name)
	assert.Equal(t, "Lidl", p.Store)
	assert.Equal(t, p.Offer.Price, p.Price)
	assert.InDelta(t, 2.5, p.Savings(), 1e-9)

	u, ok := p.UnitPrice()
	require.True(t, ok)
	assert.InDelta(t, 7.5, u, 1e-9)
}

// TestEffectivePriceNoDiscount verifies the listed price passes through
// untouched when no window matches.
func TestEffectivePriceNoDiscount(t *testing.T) {
	e := New(nil)
	off := offer("milk", "StoreA", "2025-05-08", 10.0)
	snap := catalog.NewSnapshot([]catalog.Offer{off}, nil)

	assert.Equal(t, 10.0, e.EffectivePrice(snap, off, day("2025-05-08")))
}

// TestEffectivePriceAppliesPercentage verifies the discount arithmetic.
func TestEffectivePriceAppliesPercentage(t *testing.T) {
	e := New(nil)
	off := offer("milk", "StoreA", "2025-05-08", 10.0)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{off},
		[]catalog.DiscountWindow{discount("milk", "StoreA", "2025-05-01", "2025-05-10", 25)},
	)

	assert.InDelta(t, 7.5, e.EffectivePrice(snap, off, day("2025-05-08")), 1e-9)
}

// TestEffectivePricePercentageBounds verifies the 0% and 100% edges stay
// within [0, price].
func TestEffectivePricePercentageBounds(t *testing.T) {
	e := New(nil)
	off := offer("milk", "StoreA", "2025-05-08", 10.0)

	tests := []struct {
		name     string
		pct      int
		expected float64
	}{
		{"zero percent", 0, 10.0},
		{"full percent", 100, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := catalog.NewSnapshot(
				[]catalog.Offer{off},
				[]catalog.DiscountWindow{discount("milk", "StoreA", "2025-05-01", "2025-05-10", tt.pct)},
			)
			got := e.EffectivePrice(snap, off, day("2025-05-08"))
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, off.Price)
		})
	}
}

// TestEffectivePriceWindowInclusive verifies both window boundaries apply
// the discount and the days just outside do not.
func TestEffectivePriceWindowInclusive(t *testing.T) {
	e := New(nil)
	off := offer("milk", "StoreA", "2025-05-08", 10.0)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{off},
		[]catalog.DiscountWindow{discount("milk", "StoreA", "2025-05-05", "2025-05-09", 50)},
	)

	assert.Equal(t, 10.0, e.EffectivePrice(snap, off, day("2025-05-04")))
	assert.Equal(t, 5.0, e.EffectivePrice(snap, off, day("2025-05-05")))
	assert.Equal(t, 5.0, e.EffectivePrice(snap, off, day("2025-05-09")))
	assert.Equal(t, 10.0, e.EffectivePrice(snap, off, day("2025-05-10")))
}

// TestEffectivePriceCaseInsensitiveMatch verifies name and store matching
// ignore case.
func TestEffectivePriceCaseInsensitiveMatch(t *testing.T) {
	e := New(nil)
	off := offer("Lapte Zuzu", "LIDL", "2025-05-08", 12.0)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{off},
		[]catalog.DiscountWindow{discount("lapte zuzu", "Lidl", "2025-05-01", "2025-05-10", 50)},
	)

	assert.Equal(t, 6.0, e.EffectivePrice(snap, off, day("2025-05-08")))
}

// TestOverlappingWindowsHighestPercentageWins pins the deterministic
// tie-break for overlapping discount windows: highest percentage first,
// then earliest start date.
func TestOverlappingWindowsHighestPercentageWins(t *testing.T) {
	e := New(nil)
	off := offer("milk", "StoreA", "2025-05-08", 10.0)

	snap := catalog.NewSnapshot(
		[]catalog.Offer{off},
		[]catalog.DiscountWindow{
			discount("milk", "StoreA", "2025-05-01", "2025-05-10", 10),
			discount("milk", "StoreA", "2025-05-06", "2025-05-09", 30),
			discount("milk", "StoreA", "2025-05-07", "2025-05-08", 20),
		},
	)
	assert.InDelta(t, 7.0, e.EffectivePrice(snap, off, day("2025-05-08")), 1e-9)

	// Equal percentages resolve to the earliest start date.
	snap = catalog.NewSnapshot(
		[]catalog.Offer{off},
		[]catalog.DiscountWindow{
			discount("milk", "StoreA", "2025-05-06", "2025-05-09", 30),
			discount("milk", "StoreA", "2025-05-02", "2025-05-10", 30),
		},
	)
	d, ok := snap.ActiveDiscount("milk", "StoreA", day("2025-05-08"))
	require.True(t, ok)
	assert.Equal(t, day("2025-05-02"), d.From)
}

// TestEffectivePriceOtherStoreWindowIgnored verifies a window scoped to a
// different store never applies.
func TestEffectivePriceOtherStoreWindowIgnored(t *testing.T) {
	e := New(nil)
	off := offer("milk", "StoreA", "2025-05-08", 10.0)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{off},
		[]catalog.DiscountWindow{discount("milk", "StoreB", "2025-05-01", "2025-05-10", 50)},
	)

	assert.Equal(t, 10.0, e.EffectivePrice(snap, off, day("2025-05-08")))
}
