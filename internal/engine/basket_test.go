package engine

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// TestOptimizeBasketLinePerName verifies every requested name yields
// exactly one line in input order, with unknown names degrading to a
// zero-priced placeholder instead of aborting the basket.
func TestOptimizeBasketLinePerName(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			offer("milk", "StoreA", "2025-05-08", 10.0),
			offer("eggs", "StoreB", "2025-05-08", 14.0),
		},
		nil,
	)

	res := e.OptimizeBasket(snap, []string{"milk", "bread", "eggs"}, day("2025-05-08"))
	require.Len(t, res.Items, 3)

	assert.Equal(t, "milk", res.Items[0].ProductName)
	assert.Equal(t, "StoreA", res.Items[0].Store)
	assert.Equal(t, 10.0, res.Items[0].Price)

	assert.Equal(t, "bread", res.Items[1].ProductName)
	assert.Equal(t, StoreNotFound, res.Items[1].Store)
	assert.Equal(t, 0.0, res.Items[1].Price)

	assert.Equal(t, "eggs", res.Items[2].ProductName)
	assert.Equal(t, 24.0, res.Total)
}

// TestOptimizeBasketAppliesDiscounts verifies line prices and the total
// use effective prices.
func TestOptimizeBasketAppliesDiscounts(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			offer("milk", "StoreA", "2025-05-08", 10.0),
			offer("milk", "StoreB", "2025-05-08", 12.0),
		},
		[]catalog.DiscountWindow{discount("milk", "StoreB", "2025-05-01", "2025-05-10", 50)},
	)

	res := e.OptimizeBasket(snap, []string{"milk"}, day("2025-05-08"))
	require.Len(t, res.Items, 1)
	assert.Equal(t, "StoreB", res.Items[0].Store)
	assert.Equal(t, 6.0, res.Items[0].Price)
	assert.Equal(t, 6.0, res.Total)
}

// TestOptimizeBasketDuplicateNames verifies duplicates are processed
// independently and each contributes to the total.
func TestOptimizeBasketDuplicateNames(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{offer("milk", "StoreA", "2025-05-08", 10.0)},
		nil,
	)

	res := e.OptimizeBasket(snap, []string{"milk", "milk"}, day("2025-05-08"))
	require.Len(t, res.Items, 2)
	assert.Equal(t, 20.0, res.Total)
}

// TestOptimizeBasketSuggestions verifies cheaper-unit-price substitutions
// ride along with the resolved lines.
func TestOptimizeBasketSuggestions(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			unitOffer("lapte zuzu", "StoreA", "2025-05-08", 10.0, 1, "l"),
			unitOffer("lapte ieftin", "StoreB", "2025-05-08", 7.0, 1, "l"),
		},
		nil,
	)

	res := e.OptimizeBasket(snap, []string{"lapte zuzu"}, day("2025-05-08"))
	require.Len(t, res.Suggestions, 1)

	sug := res.Suggestions[0]
	assert.Equal(t, "lapte zuzu", sug.OriginalProductName)
	assert.Equal(t, "lapte ieftin", sug.SuggestedProductName)
	assert.Equal(t, "StoreB", sug.Store)
	assert.Equal(t, 3.0, sug.Savings)
}

// TestOptimizeBasketLogsUnresolved verifies unresolved names land in the
// component log at debug level.
func TestOptimizeBasketLogsUnresolved(t *testing.T) {
	e := New(nil)
	var buf bytes.Buffer
	e.logger = zerolog.New(&buf)

	snap := catalog.NewSnapshot(
		[]catalog.Offer{offer("milk", "StoreA", "2025-05-08", 10.0)},
		nil,
	)

	e.OptimizeBasket(snap, []string{"milk", "bread"}, day("2025-05-08"))

	logged := buf.String()
	assert.Contains(t, logged, "basket item unresolved")
	assert.Contains(t, logged, `"product":"bread"`)
	assert.NotContains(t, logged, `"product":"milk"`)
}

// TestBasketInvoiceSkipsUnresolved verifies the invoice omits unknown
// names entirely rather than emitting placeholder lines.
func TestBasketInvoiceSkipsUnresolved(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(
		[]catalog.Offer{
			offer("milk", "StoreA", "2025-05-08", 10.0),
		},
		[]catalog.DiscountWindow{discount("milk", "StoreA", "2025-05-01", "2025-05-10", 20)},
	)

	inv := e.BasketInvoice(snap, []string{"milk", "bread"}, day("2025-05-08"))
	require.Len(t, inv.Items, 1)

	line := inv.Items[0]
	assert.Equal(t, "milk", line.ProductName)
	assert.Equal(t, 10.0, line.OriginalPrice)
	assert.Equal(t, 8.0, line.FinalPrice)
	assert.Equal(t, 2.0, line.Savings)
	assert.Equal(t, 8.0, inv.Total)
	assert.Equal(t, 2.0, inv.Saved)
}

// TestBasketInvoiceEmpty verifies an empty basket totals to zero.
func TestBasketInvoiceEmpty(t *testing.T) {
	e := New(nil)
	snap := catalog.NewSnapshot(nil, nil)

	inv := e.BasketInvoice(snap, nil, day("2025-05-08"))
	assert.Empty(t, inv.Items)
	assert.Equal(t, 0.0, inv.Total)
	assert.Equal(t, 0.0, inv.Saved)
}
