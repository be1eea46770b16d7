package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pricepulse/comparator-service/internal/catalog"
	"github.com/pricepulse/comparator-service/internal/engine"
)

// Product is the JSON shape of one catalog offer.
type Product struct {
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductCategory string  `json:"productCategory"`
	Brand           string  `json:"brand"`
	PackageQuantity float64 `json:"packageQuantity"`
	PackageUnit     string  `json:"packageUnit"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	Date            string  `json:"date"`
	Store           string  `json:"store"`
}

// PricedProduct is a Product with its discount-adjusted price.
type PricedProduct struct {
	Product
	FinalPrice float64 `json:"finalPrice"`
}

func toProduct(off catalog.Offer) Product {
	return Product{
		ProductID:       off.ProductID,
		ProductName:     off.Name,
		ProductCategory: off.Category,
		Brand:           off.Brand,
		PackageQuantity: off.PackageQuantity,
		PackageUnit:     off.PackageUnit,
		Price:           off.Price,
		Currency:        off.Currency,
		Date:            catalog.DayKey(off.ObservedOn),
		Store:           off.Store,
	}
}

func toProducts(offers []catalog.Offer) []Product {
	out := make([]Product, 0, len(offers))
	for _, off := range offers {
		out = append(out, toProduct(off))
	}
	return out
}

func toPricedProducts(offers []engine.PricedOffer) []PricedProduct {
	out := make([]PricedProduct, 0, len(offers))
	for _, p := range offers {
		out = append(out, PricedProduct{Product: toProduct(p.Offer), FinalPrice: p.FinalPrice})
	}
	return out
}

// ListProducts returns every loaded offer.
// GET /api/v1/products
func ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, toProducts(Snapshot().Products()))
}

// SearchProducts returns offers whose name contains the query fragment.
// GET /api/v1/products/search?q=
func SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	c.JSON(http.StatusOK, toProducts(Snapshot().SearchProductsByName(q)))
}

// ProductsByStore returns every offer of one store.
// GET /api/v1/products/store/:store
func ProductsByStore(c *gin.Context) {
	c.JSON(http.StatusOK, toProducts(Snapshot().ProductsByStore(c.Param("store"))))
}

// ProductsByCategory returns a date's offers in one category.
// GET /api/v1/products/category/:category?date=
func ProductsByCategory(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toProducts(eng.ProductsInCategory(Snapshot(), c.Param("category"), date)))
}

// ProductsUnderPrice returns a date's offers at or below a price ceiling,
// cheapest first.
// GET /api/v1/products/under?max=&date=
func ProductsUnderPrice(c *gin.Context) {
	maxStr := c.Query("max")
	maxPrice, err := strconv.ParseFloat(maxStr, 64)
	if err != nil || maxPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max must be a non-negative number"})
		return
	}
	date, ok := queryDate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toPricedProducts(eng.ProductsUnder(Snapshot(), maxPrice, date)))
}

// ProductsByUnitPrice returns a date's offers ranked by effective unit
// price.
// GET /api/v1/products/unit-price?date=
func ProductsByUnitPrice(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toPricedProducts(eng.ProductsByUnitPrice(Snapshot(), date)))
}

// ProductsWithoutDiscount returns a date's offers with no active discount.
// GET /api/v1/products/without-discount?date=
func ProductsWithoutDiscount(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toProducts(eng.ProductsWithoutDiscount(Snapshot(), date)))
}

// BrandProduct is one entry of a brand price view.
type BrandProduct struct {
	ProductName   string  `json:"productName"`
	Store         string  `json:"store"`
	OriginalPrice float64 `json:"originalPrice"`
	FinalPrice    float64 `json:"finalPrice"`
}

// ProductsByBrand returns a brand's offers on a date with their effective
// prices.
// GET /api/v1/products/brand/:brand?date=
func ProductsByBrand(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	view := eng.ProductsByBrand(Snapshot(), c.Param("brand"), date)
	out := make([]BrandProduct, 0, len(view))
	for _, p := range view {
		out = append(out, BrandProduct{
			ProductName:   p.ProductName,
			Store:         p.Store,
			OriginalPrice: p.OriginalPrice,
			FinalPrice:    p.FinalPrice,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ProductStores returns the stores listing a product on any date.
// GET /api/v1/products/:name/stores
func ProductStores(c *gin.Context) {
	name := c.Param("name")
	stores := Snapshot().StoresWithProduct(name)
	if len(stores) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no stores carry " + name})
		return
	}
	c.JSON(http.StatusOK, stores)
}

// ListBrands returns every distinct brand in the catalog.
// GET /api/v1/products/brands
func ListBrands(c *gin.Context) {
	brands := Snapshot().Brands()
	if brands == nil {
		brands = []string{}
	}
	c.JSON(http.StatusOK, brands)
}

// ComparisonResponse is the head-to-head verdict for two products.
type ComparisonResponse struct {
	NameA      string  `json:"nameA"`
	PriceA     float64 `json:"priceA"`
	UnitPriceA float64 `json:"unitPriceA"`
	NameB      string  `json:"nameB"`
	PriceB     float64 `json:"priceB"`
	UnitPriceB float64 `json:"unitPriceB"`
	Cheaper    string  `json:"cheaper"`
}

// CompareProducts compares two products by listed unit price on a date.
// GET /api/v1/products/compare?a=&b=&date=
func CompareProducts(c *gin.Context) {
	a, b := c.Query("a"), c.Query("b")
	if a == "" || b == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a and b are required"})
		return
	}
	date, ok := queryDate(c)
	if !ok {
		return
	}
	cmp, ok := eng.CompareProducts(Snapshot(), a, b, date)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "one of the products is not comparable on that date"})
		return
	}
	c.JSON(http.StatusOK, ComparisonResponse{
		NameA:      cmp.NameA,
		PriceA:     cmp.PriceA,
		UnitPriceA: cmp.UnitPriceA,
		NameB:      cmp.NameB,
		PriceB:     cmp.PriceB,
		UnitPriceB: cmp.UnitPriceB,
		Cheaper:    cmp.Cheaper,
	})
}
