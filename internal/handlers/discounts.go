package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// Discount is the JSON shape of one discount window.
type Discount struct {
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	Brand           string  `json:"brand"`
	PackageQuantity float64 `json:"packageQuantity"`
	PackageUnit     string  `json:"packageUnit"`
	Category        string  `json:"productCategory"`
	Store           string  `json:"store"`
	FromDate        string  `json:"fromDate"`
	ToDate          string  `json:"toDate"`
	Percentage      int     `json:"percentageOfDiscount"`
}

func toDiscounts(windows []catalog.DiscountWindow) []Discount {
	out := make([]Discount, 0, len(windows))
	for _, d := range windows {
		out = append(out, Discount{
			ProductID:       d.ProductID,
			ProductName:     d.Name,
			Brand:           d.Brand,
			PackageQuantity: d.PackageQuantity,
			PackageUnit:     d.PackageUnit,
			Category:        d.Category,
			Store:           d.Store,
			FromDate:        catalog.DayKey(d.From),
			ToDate:          catalog.DayKey(d.To),
			Percentage:      d.Percentage,
		})
	}
	return out
}

// ListDiscounts returns every loaded discount window.
// GET /api/v1/discounts
func ListDiscounts(c *gin.Context) {
	c.JSON(http.StatusOK, toDiscounts(Snapshot().Discounts()))
}

// DiscountsByStore returns a store's discount windows.
// GET /api/v1/discounts/store/:store
func DiscountsByStore(c *gin.Context) {
	c.JSON(http.StatusOK, toDiscounts(Snapshot().DiscountsByStore(c.Param("store"))))
}

// BestDiscounts returns the top active discounts on a date, ranked by
// percentage.
// GET /api/v1/discounts/best?date=&limit=
func BestDiscounts(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	limit := eng.BestDiscountLimit()
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, toDiscounts(Snapshot().BestActiveDiscounts(date, limit)))
}

// NewDiscounts returns windows starting exactly on a date.
// GET /api/v1/discounts/new?date=
func NewDiscounts(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toDiscounts(Snapshot().NewDiscounts(date)))
}

// DiscountsAbove returns active windows above a percentage threshold.
// GET /api/v1/discounts/above?percent=&date=
func DiscountsAbove(c *gin.Context) {
	percent, err := strconv.ParseFloat(c.Query("percent"), 64)
	if err != nil || percent < 0 || percent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "percent must be a number between 0 and 100"})
		return
	}
	date, ok := queryDate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toDiscounts(Snapshot().DiscountsAbove(date, percent)))
}

// ExpiringDiscounts returns windows whose last active day is the date.
// GET /api/v1/discounts/expiring?date=
func ExpiringDiscounts(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toDiscounts(Snapshot().ExpiringDiscounts(date)))
}
