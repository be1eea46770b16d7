package engine

import (
	"time"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// OptimizeBasket resolves each requested product name to its cheapest offer
// on the date and attaches cheaper substitution suggestions per resolved
// line. The output holds exactly one line per requested name, in input
// order; duplicates are processed independently. A name with no offer that
// day degrades to a zero-priced placeholder line with the StoreNotFound
// sentinel and does not abort the rest of the basket.
//
// There is no cross-item constraint: two lines may resolve to different
// stores, or to the same one.
func (e *Engine) OptimizeBasket(src Source, productNames []string, date time.Time) BasketResult {
	start := time.Now()
	defer func() { e.metrics.RecordCalcDuration("basket_optimize", time.Since(start)) }()
	e.metrics.RecordBasketSize(len(productNames))

	result := BasketResult{Items: make([]BasketLine, 0, len(productNames))}

	for _, name := range productNames {
		selected, ok := e.CheapestOffer(src, name, date)
		if !ok {
			e.metrics.RecordUnresolvedItem()
			e.logger.Debug().Str("product", name).Str("date", catalog.DayKey(date)).Msg("basket item unresolved")
			result.Items = append(result.Items, BasketLine{
				ProductName: name,
				Store:       StoreNotFound,
				Price:       0.0,
			})
			continue
		}

		result.Items = append(result.Items, BasketLine{
			ProductName: selected.Offer.Name,
			Store:       selected.Offer.Store,
			Price:       selected.FinalPrice,
		})
		result.Total += selected.FinalPrice

		if sub, ok := e.bestSubstituteFor(src, selected, date); ok {
			result.Suggestions = append(result.Suggestions, Substitution{
				OriginalProductName:  selected.Offer.Name,
				OriginalBrand:        selected.Offer.Brand,
				SuggestedProductName: sub.Offer.Name,
				SuggestedBrand:       sub.Offer.Brand,
				Store:                sub.Offer.Store,
				OriginalFinalPrice:   selected.FinalPrice,
				SuggestedFinalPrice:  sub.FinalPrice,
				Savings:              selected.FinalPrice - sub.FinalPrice,
			})
		}
	}

	return result
}

// BasketInvoice totals a basket at effective prices and itemizes the listed
// price, final price, and savings of each resolved line. Unlike
// OptimizeBasket, names with no offer on the date are omitted rather than
// emitted as placeholders.
func (e *Engine) BasketInvoice(src Source, productNames []string, date time.Time) Invoice {
	start := time.Now()
	defer func() { e.metrics.RecordCalcDuration("basket_invoice", time.Since(start)) }()

	var inv Invoice
	for _, name := range productNames {
		selected, ok := e.CheapestOffer(src, name, date)
		if !ok {
			e.metrics.RecordUnresolvedItem()
			e.logger.Debug().Str("product", name).Str("date", catalog.DayKey(date)).Msg("invoice item unresolved")
			continue
		}

		saved := selected.Savings()
		inv.Total += selected.FinalPrice
		inv.Saved += saved
		inv.Items = append(inv.Items, InvoiceLine{
			ProductName:   selected.Offer.Name,
			Store:         selected.Offer.Store,
			OriginalPrice: selected.Offer.Price,
			FinalPrice:    selected.FinalPrice,
			Savings:       saved,
		})
	}
	return inv
}
