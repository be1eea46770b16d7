package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// TestCheapestOfferPicksDiscountedPrice verifies the winner is chosen by
// effective price, not listed price: a 12.0 offer with 50% off beats a
// plain 10.0 offer.
func TestCheapestOfferPicksDiscountedPrice(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			offer("milk", "StoreA", "2025-05-08", 10.0),
			offer("milk", "StoreB", "2025-05-08", 12.0),
		},
		[]catalog.DiscountWindow{discount("milk", "StoreB", "2025-05-01", "2025-05-10", 50)},
	)

	best, ok := e.CheapestOffer(snap, "milk", day("2025-05-08"))
	require.True(t, ok)
	assert.Equal(t, "StoreB", best.Store)
	assert.Equal(t, 6.0, best.FinalPrice)
	assert.Equal(t, 12.0, best.Price)
	assert.Equal(t, 6.0, best.Savings())
}

// TestCheapestOfferUnknownProduct verifies the miss path.
func TestCheapestOfferUnknownProduct(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{offer("milk", "StoreA", "2025-05-08", 10.0)},
		nil,
	)

	_, ok := e.CheapestOffer(snap, "bread", day("2025-05-08"))
	assert.False(t, ok)
}

// TestCheapestOfferDateFilter verifies offers from other dates do not
// compete.
func TestCheapestOfferDateFilter(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			offer("milk", "StoreA", "2025-05-01", 4.0),
			offer("milk", "StoreB", "2025-05-08", 9.0),
		},
		nil,
	)

	best, ok := e.CheapestOffer(snap, "milk", day("2025-05-08"))
	require.True(t, ok)
	assert.Equal(t, "StoreB", best.Store)
	assert.Equal(t, 9.0, best.FinalPrice)
}

// TestCheapestOfferTieBreakByStore pins the deterministic winner on equal
// effective prices: lowercased store name ascending.
func TestCheapestOfferTieBreakByStore(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			offer("milk", "Profi", "2025-05-08", 7.0),
			offer("milk", "Kaufland", "2025-05-08", 7.0),
			offer("milk", "lidl", "2025-05-08", 7.0),
		},
		nil,
	)

	best, ok := e.CheapestOffer(snap, "milk", day("2025-05-08"))
	require.True(t, ok)
	assert.Equal(t, "Kaufland", best.Store)
}

// TestCheapestOfferCaseInsensitiveName verifies lookups fold the product
// name.
func TestCheapestOfferCaseInsensitiveName(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{offer("Lapte Zuzu", "StoreA", "2025-05-08", 10.0)},
		nil,
	)

	best, ok := e.CheapestOffer(snap, "  LAPTE ZUZU ", day("2025-05-08"))
	require.True(t, ok)
	assert.Equal(t, "Lapte Zuzu", best.Name)
}
