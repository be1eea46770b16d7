package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// ProductsInCategory returns a date's offers in one category, matched
// case-insensitively.
func (e *Engine) ProductsInCategory(src Source, category string, date time.Time) []catalog.Offer {
	cat := strings.ToLower(strings.TrimSpace(category))
	var out []catalog.Offer
	for _, off := range src.OffersOnDay(date) {
		if strings.ToLower(strings.TrimSpace(off.Category)) == cat {
			out = append(out, off)
		}
	}
	return out
}

// ProductsUnder returns a date's offers whose effective price is at or
// below the ceiling, cheapest first.
func (e *Engine) ProductsUnder(src Source, maxPrice float64, date time.Time) []PricedOffer {
	var out []PricedOffer
	for _, off := range src.OffersOnDay(date) {
		priced := e.price(src, off, date)
		if priced.FinalPrice <= maxPrice {
			out = append(out, priced)
		}
	}
	sortPriced(out)
	return out
}

// ProductsByUnitPrice returns a date's offers ranked by effective unit
// price ascending. Offers with a non-positive package quantity are
// incomparable and excluded.
func (e *Engine) ProductsByUnitPrice(src Source, date time.Time) []PricedOffer {
	var out []PricedOffer
	for _, off := range src.OffersOnDay(date) {
		priced := e.price(src, off, date)
		if _, ok := priced.UnitPrice(); !ok {
			continue
		}
		out = append(out, priced)
	}
	sort.SliceStable(out, func(i, j int) bool {
		au, _ := out[i].UnitPrice()
		bu, _ := out[j].UnitPrice()
		if au != bu {
			return au < bu
		}
		return tieBreak(out[i].Offer, out[j].Offer)
	})
	return out
}

// ProductsWithoutDiscount returns a date's offers with no active discount
// window.
func (e *Engine) ProductsWithoutDiscount(src Source, date time.Time) []catalog.Offer {
	var out []catalog.Offer
	for _, off := range src.OffersOnDay(date) {
		if _, ok := src.ActiveDiscount(off.Name, off.Store, date); ok {
			continue
		}
		out = append(out, off)
	}
	return out
}

func sortPriced(offers []PricedOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		if offers[i].FinalPrice != offers[j].FinalPrice {
			return offers[i].FinalPrice < offers[j].FinalPrice
		}
		return tieBreak(offers[i].Offer, offers[j].Offer)
	})
}

func tieBreak(a, b catalog.Offer) bool {
	sa, sb := strings.ToLower(a.Store), strings.ToLower(b.Store)
	if sa != sb {
		return sa < sb
	}
	return a.ProductID < b.ProductID
}
