package engine

import (
	"time"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// StoreNotFound is the sentinel store value emitted for basket line items
// whose product could not be resolved on the requested date.
const StoreNotFound = "Not found"

// PricedOffer pairs a catalog offer with its discount-adjusted price for a
// specific evaluation date. It is a transient derived value, never stored;
// the underlying offer is not copied or modified. The offer is embedded so
// its fields read directly off the priced value.
type PricedOffer struct {
	catalog.Offer
	FinalPrice float64
}

// Savings returns the absolute discount applied to the offer.
func (p PricedOffer) Savings() float64 {
	return p.Offer.Price - p.FinalPrice
}

// UnitPrice returns the effective price per package unit. The second return
// is false when the package quantity is zero or negative, in which case the
// offer is incomparable for substitution purposes.
func (p PricedOffer) UnitPrice() (float64, bool) {
	if p.Offer.PackageQuantity <= 0 {
		return 0, false
	}
	return p.FinalPrice / p.Offer.PackageQuantity, true
}

// BasketLine is one resolved (or unresolved) entry of an optimized basket.
type BasketLine struct {
	ProductName string
	Store       string
	Price       float64
}

// Substitution suggests a cheaper alternative for a selected basket item.
type Substitution struct {
	OriginalProductName  string
	OriginalBrand        string
	SuggestedProductName string
	SuggestedBrand       string
	Store                string
	OriginalFinalPrice   float64
	SuggestedFinalPrice  float64
	Savings              float64
}

// BasketResult is the output of basket optimization: one line per requested
// name in input order, the accumulated total of resolved lines, and cheaper
// substitution suggestions in the order their triggering item was processed.
type BasketResult struct {
	Items       []BasketLine
	Total       float64
	Suggestions []Substitution
}

// InvoiceLine carries both the listed and the discount-adjusted price for a
// resolved basket entry.
type InvoiceLine struct {
	ProductName   string
	Store         string
	OriginalPrice float64
	FinalPrice    float64
	Savings       float64
}

// Invoice totals a basket at effective prices and reports the amount saved
// through discounts. Names that resolve to no offer are omitted.
type Invoice struct {
	Items []InvoiceLine
	Total float64
	Saved float64
}

// BudgetSelection is the output of the budget selector: the accepted items
// in acceptance order and their accumulated raw-price total.
type BudgetSelection struct {
	Items []BasketLine
	Total float64
}

// DateTotal is one entry of a multi-date basket comparison.
type DateTotal struct {
	Date  time.Time
	Total float64
}

// HistoryEntry is one price observation in a product's history.
type HistoryEntry struct {
	Date          time.Time
	Store         string
	OriginalPrice float64
	FinalPrice    float64
}

// BrandPrice is a discount-adjusted view of one brand offer.
type BrandPrice struct {
	ProductName   string
	Store         string
	OriginalPrice float64
	FinalPrice    float64
}

// ProductComparison is a head-to-head unit-price comparison of two products
// on the same date. Cheaper holds the winning name, or "equal" on a tie.
type ProductComparison struct {
	NameA      string
	PriceA     float64
	UnitPriceA float64
	NameB      string
	PriceB     float64
	UnitPriceB float64
	Cheaper    string
}

// TrendPoint is one date's average price in a trend series.
type TrendPoint struct {
	Date         time.Time
	AveragePrice float64
}
