package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// catOffer builds a test offer in an explicit category.
func catOffer(name, store, date, category string, price float64) catalog.Offer {
	o := offer(name, store, date, price)
	o.Category = category
	return o
}

// TestSelectWithinBudgetGreedy verifies the cheapest-first greedy fill:
// prices 5, 6, 9 under a 15.0 ceiling select 5 and 6 and skip 9.
func TestSelectWithinBudgetGreedy(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			catOffer("iaurt", "StoreA", "2025-05-08", "lactate", 9.0),
			catOffer("lapte", "StoreA", "2025-05-08", "lactate", 5.0),
			catOffer("branza", "StoreB", "2025-05-08", "lactate", 6.0),
		},
		nil,
	)

	sel := e.SelectWithinBudget(snap, []string{"lactate"}, day("2025-05-08"), 15.0)
	require.Len(t, sel.Items, 2)
	assert.Equal(t, "lapte", sel.Items[0].ProductName)
	assert.Equal(t, "branza", sel.Items[1].ProductName)
	assert.Equal(t, 11.0, sel.Total)
}

// TestSelectWithinBudgetSkipAndContinue verifies a candidate that does not
// fit is skipped while later, cheaper-to-fit candidates still get in.
func TestSelectWithinBudgetSkipAndContinue(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			catOffer("a", "S", "2025-05-08", "lactate", 4.0),
			catOffer("b", "S", "2025-05-08", "lactate", 8.0),
			catOffer("c", "S", "2025-05-08", "lactate", 5.0),
			catOffer("d", "S", "2025-05-08", "lactate", 5.0),
		},
		nil,
	)

	// Sorted order is 4, 5, 5, 8. After 4+5+5=14 the 8 does not fit.
	sel := e.SelectWithinBudget(snap, []string{"lactate"}, day("2025-05-08"), 15.0)
	require.Len(t, sel.Items, 3)
	assert.Equal(t, 14.0, sel.Total)
	assert.LessOrEqual(t, sel.Total, 15.0)
}

// TestSelectWithinBudgetCategoryFilter verifies offers outside the allowed
// categories never enter the candidate pool, with case-insensitive
// category matching.
func TestSelectWithinBudgetCategoryFilter(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			catOffer("lapte", "StoreA", "2025-05-08", "Lactate", 5.0),
			catOffer("paine", "StoreA", "2025-05-08", "panificatie", 3.0),
		},
		nil,
	)

	sel := e.SelectWithinBudget(snap, []string{"LACTATE"}, day("2025-05-08"), 100.0)
	require.Len(t, sel.Items, 1)
	assert.Equal(t, "lapte", sel.Items[0].ProductName)
}

// TestSelectWithinBudgetIgnoresDiscounts pins that selection ranks and
// totals by listed price even when a discount is active.
func TestSelectWithinBudgetIgnoresDiscounts(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			catOffer("lapte", "StoreA", "2025-05-08", "lactate", 10.0),
		},
		[]catalog.DiscountWindow{discount("lapte", "StoreA", "2025-05-01", "2025-05-10", 50)},
	)

	sel := e.SelectWithinBudget(snap, []string{"lactate"}, day("2025-05-08"), 20.0)
	require.Len(t, sel.Items, 1)
	assert.Equal(t, 10.0, sel.Items[0].Price)
	assert.Equal(t, 10.0, sel.Total)
}

// TestSelectWithinBudgetZeroBudget verifies a zero ceiling with positive
// prices selects nothing.
func TestSelectWithinBudgetZeroBudget(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{catOffer("lapte", "StoreA", "2025-05-08", "lactate", 5.0)},
		nil,
	)

	sel := e.SelectWithinBudget(snap, []string{"lactate"}, day("2025-05-08"), 0.0)
	assert.Empty(t, sel.Items)
	assert.Equal(t, 0.0, sel.Total)
}
