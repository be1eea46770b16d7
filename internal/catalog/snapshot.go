package catalog

import (
	"sort"
	"strings"
	"time"
)

// Snapshot is an immutable, index-backed view of all loaded offers and
// discount windows. It is built once per ingestion and shared by reference:
// every query is read-only, so a snapshot may be used concurrently from any
// number of request handlers without locking. Re-ingestion builds a fresh
// snapshot and swaps the pointer atomically, never mutating an existing one.
//
// All name/store/category/unit matching is case-insensitive. The indexes are
// keyed by folded (lowercased, trimmed) composite keys computed once at build
// time, so queries avoid repeated case-folding and nested scans.
type Snapshot struct {
	offers    []Offer
	discounts []DiscountWindow

	byNameDay    map[string][]Offer // fold(name)|day
	byName       map[string][]Offer // fold(name), all days
	byDay        map[string][]Offer // day
	byStore      map[string][]Offer // fold(store)
	byBrandDay   map[string][]Offer // fold(brand)|day
	byCatUnitDay map[string][]Offer // fold(category)|fold(unit)|day

	// Discount windows per fold(name)|fold(store), pre-sorted so that the
	// first window active on a date is the deterministic winner: highest
	// percentage first, then earliest From, then earliest To.
	discountsByKey map[string][]DiscountWindow

	brands []string
}

// fold normalizes a string for case-insensitive matching.
func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func key2(a, b string) string    { return a + "|" + b }
func key3(a, b, c string) string { return a + "|" + b + "|" + c }

// NewSnapshot builds an indexed snapshot from loaded records. The inputs are
// copied; neither the snapshot nor its callers mutate them afterwards.
func NewSnapshot(offers []Offer, discounts []DiscountWindow) *Snapshot {
	s := &Snapshot{
		offers:         append([]Offer(nil), offers...),
		discounts:      append([]DiscountWindow(nil), discounts...),
		byNameDay:      make(map[string][]Offer),
		byName:         make(map[string][]Offer),
		byDay:          make(map[string][]Offer),
		byStore:        make(map[string][]Offer),
		byBrandDay:     make(map[string][]Offer),
		byCatUnitDay:   make(map[string][]Offer),
		discountsByKey: make(map[string][]DiscountWindow),
	}

	brandSeen := make(map[string]string)
	for _, o := range s.offers {
		name := fold(o.Name)
		day := DayKey(o.ObservedOn)
		catUnit := key3(fold(o.Category), fold(o.PackageUnit), day)

		s.byNameDay[key2(name, day)] = append(s.byNameDay[key2(name, day)], o)
		s.byName[name] = append(s.byName[name], o)
		s.byDay[day] = append(s.byDay[day], o)
		s.byStore[fold(o.Store)] = append(s.byStore[fold(o.Store)], o)
		s.byCatUnitDay[catUnit] = append(s.byCatUnitDay[catUnit], o)

		if o.Brand != "" {
			bk := key2(fold(o.Brand), day)
			s.byBrandDay[bk] = append(s.byBrandDay[bk], o)
			if _, ok := brandSeen[fold(o.Brand)]; !ok {
				brandSeen[fold(o.Brand)] = o.Brand
			}
		}
	}

	for _, d := range s.discounts {
		k := key2(fold(d.Name), fold(d.Store))
		s.discountsByKey[k] = append(s.discountsByKey[k], d)
	}
	for _, windows := range s.discountsByKey {
		sort.SliceStable(windows, func(i, j int) bool {
			a, b := windows[i], windows[j]
			if a.Percentage != b.Percentage {
				return a.Percentage > b.Percentage
			}
			if !SameDay(a.From, b.From) {
				return a.From.Before(b.From)
			}
			return a.To.Before(b.To)
		})
	}

	s.brands = make([]string, 0, len(brandSeen))
	for _, b := range brandSeen {
		s.brands = append(s.brands, b)
	}
	sort.Strings(s.brands)

	return s
}

// NumOffers returns the number of loaded offers.
func (s *Snapshot) NumOffers() int { return len(s.offers) }

// NumDiscounts returns the number of loaded discount windows.
func (s *Snapshot) NumDiscounts() int { return len(s.discounts) }

// Products returns all loaded offers. Callers must not mutate the result.
func (s *Snapshot) Products() []Offer {
	return s.offers
}

// ProductsByStore returns all offers for a store, matched case-insensitively.
func (s *Snapshot) ProductsByStore(store string) []Offer {
	return s.byStore[fold(store)]
}

// SearchProductsByName returns offers whose name contains the fragment,
// case-insensitively.
func (s *Snapshot) SearchProductsByName(fragment string) []Offer {
	frag := fold(fragment)
	if frag == "" {
		return nil
	}
	var out []Offer
	for _, o := range s.offers {
		if strings.Contains(fold(o.Name), frag) {
			out = append(out, o)
		}
	}
	return out
}

// OffersOn returns all offers for a product name observed on the given date.
func (s *Snapshot) OffersOn(name string, date time.Time) []Offer {
	return s.byNameDay[key2(fold(name), DayKey(date))]
}

// OffersNamed returns all offers for a product name across every date.
func (s *Snapshot) OffersNamed(name string) []Offer {
	return s.byName[fold(name)]
}

// OffersOnDay returns every offer observed on the given date.
func (s *Snapshot) OffersOnDay(date time.Time) []Offer {
	return s.byDay[DayKey(date)]
}

// OffersInCategoryUnit returns offers on a date sharing a category and
// package unit, matched case-insensitively.
func (s *Snapshot) OffersInCategoryUnit(category, unit string, date time.Time) []Offer {
	return s.byCatUnitDay[key3(fold(category), fold(unit), DayKey(date))]
}

// OffersByBrand returns offers of a brand on a date.
func (s *Snapshot) OffersByBrand(brand string, date time.Time) []Offer {
	return s.byBrandDay[key2(fold(brand), DayKey(date))]
}

// Brands returns all distinct brand names, sorted.
func (s *Snapshot) Brands() []string {
	return s.brands
}

// StoresWithProduct returns the sorted set of stores listing a product name
// on any date.
func (s *Snapshot) StoresWithProduct(name string) []string {
	seen := make(map[string]string)
	for _, o := range s.byName[fold(name)] {
		if _, ok := seen[fold(o.Store)]; !ok {
			seen[fold(o.Store)] = o.Store
		}
	}
	stores := make([]string, 0, len(seen))
	for _, st := range seen {
		stores = append(stores, st)
	}
	sort.Strings(stores)
	return stores
}

// Discounts returns all loaded discount windows.
func (s *Snapshot) Discounts() []DiscountWindow {
	return s.discounts
}

// DiscountsByStore returns all discount windows for a store.
func (s *Snapshot) DiscountsByStore(store string) []DiscountWindow {
	var out []DiscountWindow
	st := fold(store)
	for _, d := range s.discounts {
		if fold(d.Store) == st {
			out = append(out, d)
		}
	}
	return out
}

// ActiveDiscounts returns every window covering the given date.
func (s *Snapshot) ActiveDiscounts(date time.Time) []DiscountWindow {
	var out []DiscountWindow
	for _, d := range s.discounts {
		if d.ActiveOn(date) {
			out = append(out, d)
		}
	}
	return out
}

// NewDiscounts returns windows that start exactly on the given date.
func (s *Snapshot) NewDiscounts(date time.Time) []DiscountWindow {
	var out []DiscountWindow
	for _, d := range s.discounts {
		if SameDay(d.From, date) {
			out = append(out, d)
		}
	}
	return out
}

// ExpiringDiscounts returns windows whose last active day is the given date.
func (s *Snapshot) ExpiringDiscounts(date time.Time) []DiscountWindow {
	var out []DiscountWindow
	for _, d := range s.discounts {
		if SameDay(d.To, date) {
			out = append(out, d)
		}
	}
	return out
}

// DiscountsAbove returns windows active on the date with a percentage
// strictly above the threshold.
func (s *Snapshot) DiscountsAbove(date time.Time, percent float64) []DiscountWindow {
	var out []DiscountWindow
	for _, d := range s.discounts {
		if d.ActiveOn(date) && float64(d.Percentage) > percent {
			out = append(out, d)
		}
	}
	return out
}

// BestActiveDiscounts returns the top windows active on the date, ranked by
// percentage descending, limited to at most limit entries.
func (s *Snapshot) BestActiveDiscounts(date time.Time, limit int) []DiscountWindow {
	active := s.ActiveDiscounts(date)
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Percentage > active[j].Percentage
	})
	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}
	return active
}

// ActiveDiscount resolves the discount window for a (name, store) pair on a
// date. When several windows overlap the date, the pre-sorted index makes
// the winner deterministic: highest percentage, then earliest From, then
// earliest To.
func (s *Snapshot) ActiveDiscount(name, store string, date time.Time) (DiscountWindow, bool) {
	for _, d := range s.discountsByKey[key2(fold(name), fold(store))] {
		if d.ActiveOn(date) {
			return d, true
		}
	}
	return DiscountWindow{}, false
}
