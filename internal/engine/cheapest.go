package engine

import (
	"time"
)

// CheapestOffer resolves the store offering a product at the lowest effective
// price on a date. The second return is false when no store lists the product
// that day; callers decide whether that becomes a not-found response.
//
// Ties on effective price break deterministically: lowercased store
// ascending, then product ID ascending.
func (e *Engine) CheapestOffer(src Source, name string, date time.Time) (PricedOffer, bool) {
	start := time.Now()
	defer func() { e.metrics.RecordCalcDuration("cheapest_offer", time.Since(start)) }()

	candidates := src.OffersOn(name, date)
	if len(candidates) == 0 {
		return PricedOffer{}, false
	}

	best := e.price(src, candidates[0], date)
	for _, off := range candidates[1:] {
		priced := e.price(src, off, date)
		if cheaperOffer(priced, best) {
			best = priced
		}
	}
	return best, true
}

// cheaperOffer reports whether a ranks strictly ahead of b in the
// cheapest-offer ordering.
func cheaperOffer(a, b PricedOffer) bool {
	if a.FinalPrice != b.FinalPrice {
		return a.FinalPrice < b.FinalPrice
	}
	return tieBreak(a.Offer, b.Offer)
}
