package engine

import (
	"sort"
	"time"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// CompareAcrossDates computes the cost of a fixed basket on each requested
// date, resolving every name through CheapestOffer per date. The output has
// exactly one entry per distinct requested date, sorted ascending regardless
// of input order. A name with no offer on a date contributes 0.0 to that
// day's total rather than invalidating it, so an entry exists even for days
// where nothing resolves.
func (e *Engine) CompareAcrossDates(src Source, productNames []string, dates []time.Time) []DateTotal {
	start := time.Now()
	defer func() { e.metrics.RecordCalcDuration("compare_dates", time.Since(start)) }()

	distinct := make(map[string]time.Time, len(dates))
	for _, d := range dates {
		distinct[catalog.DayKey(d)] = d
	}

	out := make([]DateTotal, 0, len(distinct))
	for _, date := range distinct {
		var total float64
		for _, name := range productNames {
			if priced, ok := e.CheapestOffer(src, name, date); ok {
				total += priced.FinalPrice
			}
		}
		out = append(out, DateTotal{Date: date, Total: total})
	}

	sort.Slice(out, func(i, j int) bool {
		return catalog.DayKey(out[i].Date) < catalog.DayKey(out[j].Date)
	})
	return out
}
