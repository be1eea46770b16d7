package engine

import (
	"time"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// EffectivePrice computes the discount-adjusted price of an offer on a date.
// A discount applies when a window for the offer's (name, store) pair covers
// the date, inclusive on both ends; overlapping windows resolve to the
// Source's deterministic winner. Without a match the listed price is
// returned unchanged. Absence of a discount is never an error.
func (e *Engine) EffectivePrice(src Source, off catalog.Offer, date time.Time) float64 {
	if d, ok := src.ActiveDiscount(off.Name, off.Store, date); ok {
		return off.Price - off.Price*float64(d.Percentage)/100.0
	}
	return off.Price
}

// price wraps an offer with its effective price for the date.
func (e *Engine) price(src Source, off catalog.Offer, date time.Time) PricedOffer {
	return PricedOffer{Offer: off, FinalPrice: e.EffectivePrice(src, off, date)}
}
