package engine

import (
	"math"
	"sort"
	"strings"
	"time"
)

// FindSubstitutes returns category- and unit-compatible offers on a date
// whose effective unit price falls within the configured similarity band of
// the reference product's. The first offer found for the reference name
// serves as the comparison baseline; without one the result is empty, not an
// error.
//
// The reference's own name is not excluded from the candidate set, so the
// reference typically appears in its own results. Offers with a
// non-positive package quantity, and references with a zero unit price, are
// incomparable and yield no matches rather than a numeric fault.
func (e *Engine) FindSubstitutes(src Source, name string, date time.Time) []PricedOffer {
	start := time.Now()
	defer func() { e.metrics.RecordCalcDuration("substitutes", time.Since(start)) }()

	refs := src.OffersOn(name, date)
	if len(refs) == 0 {
		return nil
	}
	ref := e.price(src, refs[0], date)

	refUnit, ok := ref.UnitPrice()
	if !ok || refUnit == 0 {
		return nil
	}

	candidates := src.OffersInCategoryUnit(ref.Offer.Category, ref.Offer.PackageUnit, date)
	e.metrics.RecordSubstituteCandidates(len(candidates))

	var out []PricedOffer
	for _, off := range candidates {
		priced := e.price(src, off, date)
		unit, ok := priced.UnitPrice()
		if !ok {
			continue
		}
		if math.Abs(unit-refUnit)/refUnit <= e.cfg.SimilarityBand {
			out = append(out, priced)
		}
	}
	return out
}

// bestSubstituteFor finds the cheapest qualifying substitution for a
// selected basket item: a differently named offer in the same category and
// package unit whose effective unit price is strictly below the configured
// cutoff fraction of the selected item's. The second return is false when
// nothing qualifies or the selected item has no usable unit price.
func (e *Engine) bestSubstituteFor(src Source, selected PricedOffer, date time.Time) (PricedOffer, bool) {
	selUnit, ok := selected.UnitPrice()
	if !ok {
		return PricedOffer{}, false
	}

	selName := strings.ToLower(selected.Offer.Name)
	candidates := src.OffersInCategoryUnit(selected.Offer.Category, selected.Offer.PackageUnit, date)

	var qualifying []PricedOffer
	for _, off := range candidates {
		if strings.ToLower(off.Name) == selName {
			continue
		}
		priced := e.price(src, off, date)
		unit, ok := priced.UnitPrice()
		if !ok {
			continue
		}
		if unit < selUnit*e.cfg.SubstituteCutoff {
			qualifying = append(qualifying, priced)
		}
	}
	if len(qualifying) == 0 {
		return PricedOffer{}, false
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		a, b := qualifying[i], qualifying[j]
		au, _ := a.UnitPrice()
		bu, _ := b.UnitPrice()
		if au != bu {
			return au < bu
		}
		sa, sb := strings.ToLower(a.Offer.Store), strings.ToLower(b.Offer.Store)
		if sa != sb {
			return sa < sb
		}
		return strings.ToLower(a.Offer.Name) < strings.ToLower(b.Offer.Name)
	})
	return qualifying[0], true
}
