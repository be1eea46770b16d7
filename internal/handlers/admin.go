package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReloadResponse summarizes a feed reload.
type ReloadResponse struct {
	Files       int `json:"files"`
	Offers      int `json:"offers"`
	Discounts   int `json:"discounts"`
	SkippedRows int `json:"skippedRows"`
}

// ReloadFeeds re-ingests the feed directory and swaps in the freshly built
// snapshot. In-flight requests keep the snapshot they started with.
// POST /api/v1/admin/reload
func ReloadFeeds(c *gin.Context) {
	snap, report, err := loader.Load(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("feed reload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reload failed: " + err.Error()})
		return
	}
	SwapSnapshot(snap)
	logger.Info().Int("offers", report.Offers).Int("discounts", report.Discounts).Msg("snapshot swapped")
	c.JSON(http.StatusOK, ReloadResponse{
		Files:       report.Files,
		Offers:      report.Offers,
		Discounts:   report.Discounts,
		SkippedRows: len(report.Skipped),
	})
}
