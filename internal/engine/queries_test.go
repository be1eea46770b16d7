package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// TestProductsUnderCeiling verifies the ceiling is inclusive and applies to
// effective prices, cheapest first.
func TestProductsUnderCeiling(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			offer("lapte", "StoreA", "2025-05-08", 10.0),
			offer("iaurt", "StoreB", "2025-05-08", 6.0),
			offer("cascaval", "StoreC", "2025-05-08", 30.0),
		},
		[]catalog.DiscountWindow{discount("lapte", "StoreA", "2025-05-01", "2025-05-10", 40)},
	)

	under := e.ProductsUnder(snap, 6.0, day("2025-05-08"))
	require.Len(t, under, 2)
	assert.Equal(t, "iaurt", under[0].Name) // 6.0 at the ceiling
	assert.Equal(t, "lapte", under[1].Name)
	assert.Equal(t, 6.0, under[0].FinalPrice)
}

// TestProductsByUnitPrice verifies the ranking uses discount-adjusted unit
// prices and excludes offers with no usable quantity.
func TestProductsByUnitPrice(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			unitOffer("lapte mare", "StoreA", "2025-05-08", 18.0, 2, "l"), // 9.0/l listed
			unitOffer("lapte mic", "StoreB", "2025-05-08", 10.0, 1, "l"),  // 10.0/l listed, 5.0/l discounted
			unitOffer("stricat", "StoreC", "2025-05-08", 5.0, 0, "l"),
		},
		[]catalog.DiscountWindow{discount("lapte mic", "StoreB", "2025-05-01", "2025-05-10", 50)},
	)

	ranked := e.ProductsByUnitPrice(snap, day("2025-05-08"))
	require.Len(t, ranked, 2)
	assert.Equal(t, "lapte mic", ranked[0].Name)
	assert.Equal(t, 5.0, ranked[0].FinalPrice)
	assert.Equal(t, "lapte mare", ranked[1].Name)
}

// TestProductsWithoutDiscount verifies offers under an active window drop
// out of the listing.
func TestProductsWithoutDiscount(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			offer("lapte", "StoreA", "2025-05-08", 10.0),
			offer("iaurt", "StoreB", "2025-05-08", 6.0),
		},
		[]catalog.DiscountWindow{discount("lapte", "StoreA", "2025-05-01", "2025-05-10", 10)},
	)

	plain := e.ProductsWithoutDiscount(snap, day("2025-05-08"))
	require.Len(t, plain, 1)
	assert.Equal(t, "iaurt", plain[0].Name)
}

// TestProductsInCategory verifies category filtering folds case.
func TestProductsInCategory(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			catOffer("lapte", "StoreA", "2025-05-08", "Lactate", 10.0),
			catOffer("paine", "StoreA", "2025-05-08", "panificatie", 3.0),
		},
		nil,
	)

	hits := e.ProductsInCategory(snap, "lactate", day("2025-05-08"))
	require.Len(t, hits, 1)
	assert.Equal(t, "lapte", hits[0].Name)
}
