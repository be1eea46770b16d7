package ingest

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

var (
	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "comparator_feed_load_duration_seconds",
		Help:    "Wall time of a full feed directory load",
		Buckets: prometheus.DefBuckets,
	})
	snapshotOffers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "comparator_snapshot_offers",
		Help: "Offers in the most recently built snapshot",
	})
	snapshotDiscounts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "comparator_snapshot_discounts",
		Help: "Discount windows in the most recently built snapshot",
	})
	skippedRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comparator_feed_rows_skipped_total",
		Help: "Malformed feed rows skipped across all loads",
	})
)

func recordLoad(snap *catalog.Snapshot, skipped int, elapsed time.Duration) {
	loadDuration.Observe(elapsed.Seconds())
	snapshotOffers.Set(float64(snap.NumOffers()))
	snapshotDiscounts.Set(float64(snap.NumDiscounts()))
	skippedRows.Add(float64(skipped))
}
