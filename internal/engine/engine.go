// Package engine implements the price comparison and basket optimization
// core: effective price calculation over discount windows, cheapest-offer
// resolution, substitute finding by normalized unit price, basket
// optimization, greedy budget selection, and multi-date basket comparison.
//
// Every operation is a pure function over a read-only catalog Source passed
// into the call; the engine owns no catalog state and may be used from any
// number of goroutines concurrently. Missing data degrades to empty or zero
// results, never to errors.
package engine

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Engine evaluates pricing queries against a catalog snapshot.
type Engine struct {
	cfg     *Config
	metrics *MetricsRecorder
	logger  zerolog.Logger
}

// New creates an engine with the given configuration. A nil config falls
// back to defaults.
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{
		cfg:     cfg,
		metrics: NewMetricsRecorder(),
		logger:  log.With().Str("component", "engine").Logger(),
	}
}

// BestDiscountLimit returns the configured default cap for best-discount
// listings.
func (e *Engine) BestDiscountLimit() int {
	return e.cfg.BestDiscountLimit
}
