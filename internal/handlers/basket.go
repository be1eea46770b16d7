package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pricepulse/comparator-service/internal/catalog"
)

// BasketRequest is a basket of product names evaluated on one date.
type BasketRequest struct {
	Products []string `json:"products" binding:"required,min=1"`
	Date     string   `json:"date" binding:"required"`
}

// BasketLineResponse is one resolved (or unresolved) basket line.
type BasketLineResponse struct {
	ProductName string  `json:"productName"`
	Store       string  `json:"store"`
	Price       float64 `json:"price"`
}

// SubstitutionResponse is a cheaper alternative suggested for a basket line.
type SubstitutionResponse struct {
	OriginalProductName  string  `json:"originalProductName"`
	OriginalBrand        string  `json:"originalBrand"`
	SuggestedProductName string  `json:"suggestedProductName"`
	SuggestedBrand       string  `json:"suggestedBrand"`
	Store                string  `json:"store"`
	OriginalFinalPrice   float64 `json:"originalFinalPrice"`
	SuggestedFinalPrice  float64 `json:"suggestedFinalPrice"`
	Savings              float64 `json:"savings"`
}

// OptimizeResponse is the optimized basket with its substitution
// suggestions.
type OptimizeResponse struct {
	Items       []BasketLineResponse   `json:"items"`
	Total       float64                `json:"total"`
	Suggestions []SubstitutionResponse `json:"suggestions"`
}

// OptimizeBasket resolves each basket item to its cheapest offer on the
// date.
// POST /api/v1/basket/optimize
func OptimizeBasket(c *gin.Context) {
	req, date, ok := bindBasket(c)
	if !ok {
		return
	}

	res := eng.OptimizeBasket(Snapshot(), req.Products, date)

	out := OptimizeResponse{
		Items:       make([]BasketLineResponse, 0, len(res.Items)),
		Total:       res.Total,
		Suggestions: make([]SubstitutionResponse, 0, len(res.Suggestions)),
	}
	for _, it := range res.Items {
		out.Items = append(out.Items, BasketLineResponse{
			ProductName: it.ProductName,
			Store:       it.Store,
			Price:       it.Price,
		})
	}
	for _, s := range res.Suggestions {
		out.Suggestions = append(out.Suggestions, SubstitutionResponse{
			OriginalProductName:  s.OriginalProductName,
			OriginalBrand:        s.OriginalBrand,
			SuggestedProductName: s.SuggestedProductName,
			SuggestedBrand:       s.SuggestedBrand,
			Store:                s.Store,
			OriginalFinalPrice:   s.OriginalFinalPrice,
			SuggestedFinalPrice:  s.SuggestedFinalPrice,
			Savings:              s.Savings,
		})
	}
	c.JSON(http.StatusOK, out)
}

// InvoiceLineResponse itemizes one resolved basket line of an invoice.
type InvoiceLineResponse struct {
	ProductName   string  `json:"productName"`
	Store         string  `json:"store"`
	OriginalPrice float64 `json:"originalPrice"`
	FinalPrice    float64 `json:"finalPrice"`
	Savings       float64 `json:"savings"`
}

// InvoiceResponse totals a basket at effective prices.
type InvoiceResponse struct {
	Items []InvoiceLineResponse `json:"items"`
	Total float64               `json:"total"`
	Saved float64               `json:"saved"`
}

// BasketInvoice itemizes a basket's resolved lines with listed price, final
// price, and savings. Unresolved names are omitted.
// POST /api/v1/basket/invoice
func BasketInvoice(c *gin.Context) {
	req, date, ok := bindBasket(c)
	if !ok {
		return
	}

	inv := eng.BasketInvoice(Snapshot(), req.Products, date)
	out := InvoiceResponse{
		Items: make([]InvoiceLineResponse, 0, len(inv.Items)),
		Total: inv.Total,
		Saved: inv.Saved,
	}
	for _, line := range inv.Items {
		out.Items = append(out.Items, InvoiceLineResponse{
			ProductName:   line.ProductName,
			Store:         line.Store,
			OriginalPrice: line.OriginalPrice,
			FinalPrice:    line.FinalPrice,
			Savings:       line.Savings,
		})
	}
	c.JSON(http.StatusOK, out)
}

// BudgetRequest asks for a greedy basket fill from category offers under a
// spending ceiling.
type BudgetRequest struct {
	Categories []string `json:"categories" binding:"required,min=1"`
	Date       string   `json:"date" binding:"required"`
	MaxBudget  float64  `json:"maxBudget" binding:"required,gt=0"`
}

// BudgetResponse is the selected items and their raw-price total.
type BudgetResponse struct {
	Items []BasketLineResponse `json:"items"`
	Total float64              `json:"total"`
}

// BudgetBasket greedily selects category offers without exceeding the
// budget.
// POST /api/v1/basket/budget
func BudgetBasket(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := parseDateValue(c, req.Date)
	if !ok {
		return
	}

	sel := eng.SelectWithinBudget(Snapshot(), req.Categories, date, req.MaxBudget)
	out := BudgetResponse{Items: make([]BasketLineResponse, 0, len(sel.Items)), Total: sel.Total}
	for _, it := range sel.Items {
		out.Items = append(out.Items, BasketLineResponse{
			ProductName: it.ProductName,
			Store:       it.Store,
			Price:       it.Price,
		})
	}
	c.JSON(http.StatusOK, out)
}

// CompareDatesRequest prices one basket on several dates.
type CompareDatesRequest struct {
	Products []string `json:"products" binding:"required,min=1"`
	Dates    []string `json:"dates" binding:"required,min=1"`
}

// DateTotalResponse is the basket total for one date.
type DateTotalResponse struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// CompareBasketDates computes the basket's cost on each requested date.
// POST /api/v1/basket/compare-dates
func CompareBasketDates(c *gin.Context) {
	var req CompareDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dates := make([]time.Time, 0, len(req.Dates))
	for _, raw := range req.Dates {
		d, ok := parseDateValue(c, raw)
		if !ok {
			return
		}
		dates = append(dates, d)
	}

	totals := eng.CompareAcrossDates(Snapshot(), req.Products, dates)
	out := make([]DateTotalResponse, 0, len(totals))
	for _, dt := range totals {
		out = append(out, DateTotalResponse{Date: catalog.DayKey(dt.Date), Total: dt.Total})
	}
	c.JSON(http.StatusOK, out)
}

func bindBasket(c *gin.Context) (BasketRequest, time.Time, bool) {
	var req BasketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return BasketRequest{}, time.Time{}, false
	}
	date, ok := parseDateValue(c, req.Date)
	if !ok {
		return BasketRequest{}, time.Time{}, false
	}
	return req, date, true
}
