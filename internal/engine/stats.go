package engine

import (
	"sort"
	"strings"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// CategoryPriceTrend returns the average listed price per observation date
// for one category at one store, sorted by date ascending.
func (e *Engine) CategoryPriceTrend(src Source, category, store string) []TrendPoint {
	cat := strings.ToLower(strings.TrimSpace(category))
	var offers []catalog.Offer
	for _, off := range src.ProductsByStore(store) {
		if strings.ToLower(strings.TrimSpace(off.Category)) == cat {
			offers = append(offers, off)
		}
	}
	return averageByDay(offers)
}

// StoreDailyIndex returns the average listed price per observation date
// across a store's whole assortment, sorted by date ascending.
func (e *Engine) StoreDailyIndex(src Source, store string) []TrendPoint {
	return averageByDay(src.ProductsByStore(store))
}

// averageByDay groups offers by observation day and averages their listed
// prices.
func averageByDay(offers []catalog.Offer) []TrendPoint {
	type bucket struct {
		sum   float64
		count int
	}
	days := make(map[string]*bucket)
	dates := make(map[string]catalog.Offer)
	for _, off := range offers {
		day := catalog.DayKey(off.ObservedOn)
		if days[day] == nil {
			days[day] = &bucket{}
			dates[day] = off
		}
		days[day].sum += off.Price
		days[day].count++
	}

	out := make([]TrendPoint, 0, len(days))
	for day, b := range days {
		out = append(out, TrendPoint{
			Date:         dates[day].ObservedOn,
			AveragePrice: b.sum / float64(b.count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return catalog.DayKey(out[i].Date) < catalog.DayKey(out[j].Date)
	})
	return out
}
