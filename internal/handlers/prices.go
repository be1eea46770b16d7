package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// CheapestResponse is the winning offer of a cheapest-price lookup.
type CheapestResponse struct {
	Product
	FinalPrice float64 `json:"finalPrice"`
	Savings    float64 `json:"savings"`
}

// CheapestPrice resolves the store offering a product at the lowest
// effective price on a date.
// GET /api/v1/prices/cheapest?product=&date=
func CheapestPrice(c *gin.Context) {
	product := c.Query("product")
	if product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product is required"})
		return
	}
	date, ok := queryDate(c)
	if !ok {
		return
	}
	best, ok := eng.CheapestOffer(Snapshot(), product, date)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no offers for " + product + " on that date"})
		return
	}
	c.JSON(http.StatusOK, CheapestResponse{
		Product:    toProduct(best.Offer),
		FinalPrice: best.FinalPrice,
		Savings:    best.Savings(),
	})
}

// HistoryEntryResponse is one observation in a product's price history.
type HistoryEntryResponse struct {
	Date          string  `json:"date"`
	Store         string  `json:"store"`
	OriginalPrice float64 `json:"originalPrice"`
	FinalPrice    float64 `json:"finalPrice"`
}

// PriceHistory returns every observation of a product across dates and
// stores.
// GET /api/v1/prices/history?product=
func PriceHistory(c *gin.Context) {
	product := c.Query("product")
	if product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product is required"})
		return
	}
	hist := eng.PriceHistory(Snapshot(), product)
	if len(hist) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no observations for " + product})
		return
	}
	out := make([]HistoryEntryResponse, 0, len(hist))
	for _, h := range hist {
		out = append(out, HistoryEntryResponse{
			Date:          catalog.DayKey(h.Date),
			Store:         h.Store,
			OriginalPrice: h.OriginalPrice,
			FinalPrice:    h.FinalPrice,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Substitutes returns offers within the unit-price similarity band of a
// reference product on a date.
// GET /api/v1/prices/substitutes?product=&date=
func Substitutes(c *gin.Context) {
	product := c.Query("product")
	if product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product is required"})
		return
	}
	date, ok := queryDate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toPricedProducts(eng.FindSubstitutes(Snapshot(), product, date)))
}
