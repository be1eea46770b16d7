package engine

import (
	"time"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// Source is the read-only catalog view the engine computes over. It is
// satisfied by *catalog.Snapshot; the indirection keeps the engine decoupled
// from snapshot construction and lets tests supply fixtures directly.
//
// Implementations must be safe for concurrent use and must never mutate
// returned slices after the fact. The engine treats every call as a bounded,
// in-memory lookup with no I/O.
type Source interface {
	// OffersOn returns all offers for a product name observed on a date.
	// Name matching is case-insensitive.
	OffersOn(name string, date time.Time) []catalog.Offer

	// OffersNamed returns all offers for a product name across every date.
	OffersNamed(name string) []catalog.Offer

	// OffersOnDay returns every offer observed on a date.
	OffersOnDay(date time.Time) []catalog.Offer

	// OffersInCategoryUnit returns offers on a date sharing a category and
	// package unit, both matched case-insensitively.
	OffersInCategoryUnit(category, unit string, date time.Time) []catalog.Offer

	// OffersByBrand returns offers of a brand on a date.
	OffersByBrand(brand string, date time.Time) []catalog.Offer

	// ProductsByStore returns all offers for a store across every date.
	ProductsByStore(store string) []catalog.Offer

	// ActiveDiscount resolves the discount window for a (name, store) pair
	// on a date. When several windows overlap the date the implementation
	// must pick a deterministic winner; the snapshot ranks by highest
	// percentage, then earliest start, then earliest end.
	ActiveDiscount(name, store string, date time.Time) (catalog.DiscountWindow, bool)
}
