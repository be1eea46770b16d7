// Package handlers implements the HTTP surface of the comparator service.
// Handlers are thin: they parse and validate request parameters, call the
// engine against the current catalog snapshot, and shape the response.
// Date strings are parsed here; a malformed date never reaches the engine.
package handlers

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pricepulse/comparator-service/internal/alerts"
	"github.com/pricepulse/comparator-service/internal/catalog"
	"github.com/pricepulse/comparator-service/internal/engine"
	"github.com/pricepulse/comparator-service/internal/ingest"
)

var (
	snapshot atomic.Pointer[catalog.Snapshot]
	eng      *engine.Engine
	alertSvc *alerts.Service
	loader   *ingest.Loader
	logger   zerolog.Logger
)

// Init wires the handler package to its collaborators and installs the
// initial snapshot. Must be called before any route is served.
func Init(e *engine.Engine, a *alerts.Service, l *ingest.Loader, snap *catalog.Snapshot) {
	eng = e
	alertSvc = a
	loader = l
	snapshot.Store(snap)
	logger = log.With().Str("component", "handlers").Logger()
}

// Snapshot returns the current catalog snapshot. The pointer is swapped
// atomically on reload; a request keeps using the snapshot it started with.
func Snapshot() *catalog.Snapshot {
	return snapshot.Load()
}

// SwapSnapshot atomically replaces the current snapshot.
func SwapSnapshot(snap *catalog.Snapshot) {
	snapshot.Store(snap)
}

// queryDate parses the "date" query parameter. An absent date defaults to
// today; a malformed one is answered with 400 and false.
func queryDate(c *gin.Context) (time.Time, bool) {
	return parseDateValue(c, c.Query("date"))
}

func parseDateValue(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}
	d, err := catalog.ParseDay(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD: " + raw})
		return time.Time{}, false
	}
	return d, true
}
