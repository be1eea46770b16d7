package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	require.NoError(t, err)
	return d
}

func testOffer(name, store, day string, price float64) Offer {
	d, _ := ParseDay(day)
	return Offer{
		ProductID:       name + "-" + store,
		Name:            name,
		Category:        "lactate",
		Brand:           "Zuzu",
		PackageQuantity: 1,
		PackageUnit:     "l",
		Price:           price,
		Currency:        "RON",
		ObservedOn:      d,
		Store:           store,
	}
}

func testDiscount(name, store, from, to string, pct int) DiscountWindow {
	f, _ := ParseDay(from)
	t, _ := ParseDay(to)
	return DiscountWindow{
		ProductID:  name + "-" + store,
		Name:       name,
		Store:      store,
		From:       f,
		To:         t,
		Percentage: pct,
	}
}

// TestSnapshotNameDayIndex verifies OffersOn folds the name and filters by
// day.
func TestSnapshotNameDayIndex(t *testing.T) {
	snap := NewSnapshot([]Offer{
		testOffer("Lapte Zuzu", "Lidl", "2025-05-08", 10.0),
		testOffer("Lapte Zuzu", "Profi", "2025-05-08", 11.0),
		testOffer("Lapte Zuzu", "Lidl", "2025-05-01", 12.0),
	}, nil)

	offers := snap.OffersOn("  lapte zuzu ", mustDay(t, "2025-05-08"))
	require.Len(t, offers, 2)
	for _, o := range offers {
		assert.True(t, SameDay(o.ObservedOn, mustDay(t, "2025-05-08")))
	}

	assert.Len(t, snap.OffersNamed("LAPTE ZUZU"), 3)
	assert.Empty(t, snap.OffersOn("lapte zuzu", mustDay(t, "2025-05-09")))
}

// TestSnapshotSearchByName verifies substring search is case-insensitive.
func TestSnapshotSearchByName(t *testing.T) {
	snap := NewSnapshot([]Offer{
		testOffer("Lapte Zuzu", "Lidl", "2025-05-08", 10.0),
		testOffer("Iaurt Zuzu", "Lidl", "2025-05-08", 6.0),
		testOffer("Paine Alba", "Lidl", "2025-05-08", 3.0),
	}, nil)

	hits := snap.SearchProductsByName("ZUZ")
	require.Len(t, hits, 2)
	assert.Empty(t, snap.SearchProductsByName("cascaval"))
}

// TestSnapshotCategoryUnitIndex verifies the category+unit+day index folds
// all its key parts.
func TestSnapshotCategoryUnitIndex(t *testing.T) {
	kg := testOffer("Cascaval", "Lidl", "2025-05-08", 30.0)
	kg.Category = "Branzeturi"
	kg.PackageUnit = "KG"

	snap := NewSnapshot([]Offer{
		testOffer("Lapte Zuzu", "Lidl", "2025-05-08", 10.0),
		kg,
	}, nil)

	hits := snap.OffersInCategoryUnit("branzeturi", "kg", mustDay(t, "2025-05-08"))
	require.Len(t, hits, 1)
	assert.Equal(t, "Cascaval", hits[0].Name)
}

// TestSnapshotBrands verifies the distinct brand list is sorted and brand
// lookups fold case.
func TestSnapshotBrands(t *testing.T) {
	a := testOffer("Lapte", "Lidl", "2025-05-08", 10.0)
	a.Brand = "Zuzu"
	b := testOffer("Iaurt", "Profi", "2025-05-08", 6.0)
	b.Brand = "Dorna"
	c := testOffer("Sana", "Lidl", "2025-05-08", 5.0)
	c.Brand = "zuzu"

	snap := NewSnapshot([]Offer{a, b, c}, nil)
	assert.Equal(t, []string{"Dorna", "Zuzu"}, snap.Brands())
	assert.Len(t, snap.OffersByBrand("ZUZU", mustDay(t, "2025-05-08")), 2)
}

// TestSnapshotStoresWithProduct verifies the distinct store list for a
// product name.
func TestSnapshotStoresWithProduct(t *testing.T) {
	snap := NewSnapshot([]Offer{
		testOffer("Lapte", "Profi", "2025-05-08", 10.0),
		testOffer("Lapte", "Lidl", "2025-05-08", 9.0),
		testOffer("Lapte", "Lidl", "2025-05-01", 9.5),
	}, nil)

	assert.Equal(t, []string{"Lidl", "Profi"}, snap.StoresWithProduct("lapte"))
}

// TestSnapshotDiscountQueries covers the window filters: active, new,
// expiring, and above-threshold.
func TestSnapshotDiscountQueries(t *testing.T) {
	snap := NewSnapshot(nil, []DiscountWindow{
		testDiscount("lapte", "Lidl", "2025-05-08", "2025-05-10", 10),
		testDiscount("iaurt", "Lidl", "2025-05-01", "2025-05-08", 25),
		testDiscount("paine", "Profi", "2025-05-09", "2025-05-12", 40),
	})
	d := mustDay(t, "2025-05-08")

	assert.Len(t, snap.ActiveDiscounts(d), 2)
	require.Len(t, snap.NewDiscounts(d), 1)
	assert.Equal(t, "lapte", snap.NewDiscounts(d)[0].Name)
	require.Len(t, snap.ExpiringDiscounts(d), 1)
	assert.Equal(t, "iaurt", snap.ExpiringDiscounts(d)[0].Name)
	require.Len(t, snap.DiscountsAbove(d, 20), 1)
	assert.Equal(t, "iaurt", snap.DiscountsAbove(d, 20)[0].Name)
}

// TestSnapshotBestActiveDiscounts verifies ranking by percentage and the
// limit cutoff.
func TestSnapshotBestActiveDiscounts(t *testing.T) {
	snap := NewSnapshot(nil, []DiscountWindow{
		testDiscount("a", "Lidl", "2025-05-01", "2025-05-10", 10),
		testDiscount("b", "Lidl", "2025-05-01", "2025-05-10", 40),
		testDiscount("c", "Profi", "2025-05-01", "2025-05-10", 25),
	})

	best := snap.BestActiveDiscounts(mustDay(t, "2025-05-08"), 2)
	require.Len(t, best, 2)
	assert.Equal(t, 40, best[0].Percentage)
	assert.Equal(t, 25, best[1].Percentage)
}

// TestSnapshotActiveDiscountDeterministic pins the overlap winner: highest
// percentage, then earliest start.
func TestSnapshotActiveDiscountDeterministic(t *testing.T) {
	snap := NewSnapshot(nil, []DiscountWindow{
		testDiscount("lapte", "Lidl", "2025-05-06", "2025-05-09", 15),
		testDiscount("lapte", "Lidl", "2025-05-01", "2025-05-10", 30),
		testDiscount("lapte", "Lidl", "2025-05-07", "2025-05-08", 30),
	})

	d, ok := snap.ActiveDiscount("LAPTE", "lidl", mustDay(t, "2025-05-08"))
	require.True(t, ok)
	assert.Equal(t, 30, d.Percentage)
	assert.Equal(t, mustDay(t, "2025-05-01"), d.From)

	_, ok = snap.ActiveDiscount("lapte", "profi", mustDay(t, "2025-05-08"))
	assert.False(t, ok)
}

// TestSnapshotCopiesInput verifies mutating the caller's slices after
// construction does not leak into the snapshot.
func TestSnapshotCopiesInput(t *testing.T) {
	offers := []Offer{testOffer("Lapte", "Lidl", "2025-05-08", 10.0)}
	snap := NewSnapshot(offers, nil)

	offers[0].Name = "mutated"
	assert.Equal(t, "Lapte", snap.Products()[0].Name)
}

// TestDiscountWindowActiveOn verifies inclusive bounds at day granularity.
func TestDiscountWindowActiveOn(t *testing.T) {
	w := testDiscount("lapte", "Lidl", "2025-05-05", "2025-05-09", 10)

	assert.False(t, w.ActiveOn(mustDay(t, "2025-05-04")))
	assert.True(t, w.ActiveOn(mustDay(t, "2025-05-05")))
	assert.True(t, w.ActiveOn(mustDay(t, "2025-05-09")))
	assert.False(t, w.ActiveOn(mustDay(t, "2025-05-10")))
}
