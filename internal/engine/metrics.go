package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// calcDuration tracks the time taken by engine calculations per operation.
	calcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "comparator_calculation_duration_seconds",
		Help:    "Time taken for engine calculations by operation",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"op"}) // op: cheapest_offer, substitutes, basket_optimize, basket_invoice, budget_select, compare_dates

	// basketSize tracks the distribution of requested basket sizes.
	basketSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "comparator_basket_items_count",
		Help:    "Number of product names in basket requests",
		Buckets: []float64{1, 2, 5, 10, 20, 50},
	})

	// unresolvedItems counts basket line items that resolved to no offer.
	unresolvedItems = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comparator_unresolved_items_total",
		Help: "Total number of basket items with no offer on the requested date",
	})

	// substituteCandidates tracks candidate set sizes for substitute queries.
	substituteCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "comparator_substitute_candidates_count",
		Help:    "Number of category/unit-compatible candidates per substitutes query",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
	})

	// budgetUtilization tracks how much of the budget ceiling was used.
	budgetUtilization = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "comparator_budget_utilization_ratio",
		Help:    "Fraction of the budget ceiling consumed by the greedy selection",
		Buckets: []float64{0.25, 0.5, 0.75, 0.9, 0.95, 0.99, 1.0},
	})
)

// MetricsRecorder provides methods to record engine metrics.
type MetricsRecorder struct{}

// NewMetricsRecorder creates a new metrics recorder.
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{}
}

// RecordCalcDuration records the duration of an engine calculation.
func (m *MetricsRecorder) RecordCalcDuration(op string, d time.Duration) {
	calcDuration.WithLabelValues(op).Observe(d.Seconds())
}

// RecordBasketSize records the size of a requested basket.
func (m *MetricsRecorder) RecordBasketSize(size int) {
	basketSize.Observe(float64(size))
}

// RecordUnresolvedItem records a basket item with no offer.
func (m *MetricsRecorder) RecordUnresolvedItem() {
	unresolvedItems.Inc()
}

// RecordSubstituteCandidates records the candidate set size of a substitutes
// query.
func (m *MetricsRecorder) RecordSubstituteCandidates(count int) {
	substituteCandidates.Observe(float64(count))
}

// RecordBudgetUtilization records the used fraction of a budget ceiling.
func (m *MetricsRecorder) RecordBudgetUtilization(ratio float64) {
	budgetUtilization.Observe(ratio)
}
