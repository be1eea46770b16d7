package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// PriceHistory returns every observation of a product across dates and
// stores with the discount evaluated at each observation's own date, sorted
// by date ascending (ties: lowercased store ascending).
func (e *Engine) PriceHistory(src Source, name string) []HistoryEntry {
	offers := src.OffersNamed(name)
	entries := make([]HistoryEntry, 0, len(offers))
	for _, off := range offers {
		priced := e.price(src, off, off.ObservedOn)
		entries = append(entries, HistoryEntry{
			Date:          off.ObservedOn,
			Store:         off.Store,
			OriginalPrice: off.Price,
			FinalPrice:    priced.FinalPrice,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := catalog.DayKey(entries[i].Date), catalog.DayKey(entries[j].Date)
		if di != dj {
			return di < dj
		}
		return strings.ToLower(entries[i].Store) < strings.ToLower(entries[j].Store)
	})
	return entries
}

// ProductsByBrand returns a discount-adjusted price view of every offer of a
// brand on a date.
func (e *Engine) ProductsByBrand(src Source, brand string, date time.Time) []BrandPrice {
	offers := src.OffersByBrand(brand, date)
	out := make([]BrandPrice, 0, len(offers))
	for _, off := range offers {
		priced := e.price(src, off, date)
		out = append(out, BrandPrice{
			ProductName:   off.Name,
			Store:         off.Store,
			OriginalPrice: off.Price,
			FinalPrice:    priced.FinalPrice,
		})
	}
	return out
}

// CompareProducts compares two products head-to-head by listed unit price on
// a date, using the first offer found for each name. The second return is
// false when either product has no offer that day or no usable package
// quantity.
func (e *Engine) CompareProducts(src Source, nameA, nameB string, date time.Time) (ProductComparison, bool) {
	offersA := src.OffersOn(nameA, date)
	offersB := src.OffersOn(nameB, date)
	if len(offersA) == 0 || len(offersB) == 0 {
		return ProductComparison{}, false
	}

	a, b := offersA[0], offersB[0]
	if a.PackageQuantity <= 0 || b.PackageQuantity <= 0 {
		return ProductComparison{}, false
	}

	unitA := a.Price / a.PackageQuantity
	unitB := b.Price / b.PackageQuantity

	cheaper := "equal"
	switch {
	case unitA < unitB:
		cheaper = nameA
	case unitA > unitB:
		cheaper = nameB
	}

	return ProductComparison{
		NameA:      nameA,
		PriceA:     a.Price,
		UnitPriceA: unitA,
		NameB:      nameB,
		PriceB:     b.Price,
		UnitPriceB: unitB,
		Cheaper:    cheaper,
	}, true
}
