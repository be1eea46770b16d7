package engine

import (
	"sort"
	"strings"
	"time"
)

// SelectWithinBudget greedily fills a basket from the offers of the allowed
// categories on a date without exceeding the budget ceiling. Candidates are
// ranked by raw listed price ascending (ties: lowercased store, then
// lowercased name) and accepted whenever they still fit; a skipped candidate
// is never revisited, so the result is the greedy approximation, not the
// global optimum.
//
// The selector works on listed prices and ignores active discounts. The
// returned total never exceeds maxBudget.
func (e *Engine) SelectWithinBudget(src Source, categories []string, date time.Time, maxBudget float64) BudgetSelection {
	start := time.Now()
	defer func() { e.metrics.RecordCalcDuration("budget_select", time.Since(start)) }()

	allowed := make(map[string]bool, len(categories))
	for _, c := range categories {
		allowed[strings.ToLower(strings.TrimSpace(c))] = true
	}

	var candidates []BasketLine
	for _, off := range src.OffersOnDay(date) {
		if !allowed[strings.ToLower(strings.TrimSpace(off.Category))] {
			continue
		}
		candidates = append(candidates, BasketLine{
			ProductName: off.Name,
			Store:       off.Store,
			Price:       off.Price,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		sa, sb := strings.ToLower(a.Store), strings.ToLower(b.Store)
		if sa != sb {
			return sa < sb
		}
		return strings.ToLower(a.ProductName) < strings.ToLower(b.ProductName)
	})

	selection := BudgetSelection{Items: make([]BasketLine, 0, len(candidates))}
	for _, c := range candidates {
		if selection.Total+c.Price > maxBudget {
			continue
		}
		selection.Items = append(selection.Items, c)
		selection.Total += c.Price
	}

	if maxBudget > 0 {
		e.metrics.RecordBudgetUtilization(selection.Total / maxBudget)
	}
	return selection
}
