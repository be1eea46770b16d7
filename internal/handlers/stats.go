package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pricepulse/comparator-service/internal/catalog"
	"github.com/pricepulse/comparator-service/internal/engine"
)

// TrendPointResponse is one date's average price in a trend series.
type TrendPointResponse struct {
	Date         string  `json:"date"`
	AveragePrice float64 `json:"averagePrice"`
}

func toTrend(points []engine.TrendPoint) []TrendPointResponse {
	out := make([]TrendPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, TrendPointResponse{
			Date:         catalog.DayKey(p.Date),
			AveragePrice: p.AveragePrice,
		})
	}
	return out
}

// CategoryTrend returns the average listed price per date for one category
// at one store.
// GET /api/v1/stats/category-trend?category=&store=
func CategoryTrend(c *gin.Context) {
	category, store := c.Query("category"), c.Query("store")
	if category == "" || store == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and store are required"})
		return
	}
	c.JSON(http.StatusOK, toTrend(eng.CategoryPriceTrend(Snapshot(), category, store)))
}

// StoreIndex returns the average listed price per date across a store's
// assortment.
// GET /api/v1/stats/store-index?store=
func StoreIndex(c *gin.Context) {
	store := c.Query("store")
	if store == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store is required"})
		return
	}
	c.JSON(http.StatusOK, toTrend(eng.StoreDailyIndex(Snapshot(), store)))
}
