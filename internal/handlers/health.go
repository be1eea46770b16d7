package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Offers    int    `json:"offers"`
	Discounts int    `json:"discounts"`
}

// HealthCheck reports service liveness and the size of the current
// snapshot.
// GET /health
func HealthCheck(c *gin.Context) {
	snap := Snapshot()
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Offers:    snap.NumOffers(),
		Discounts: snap.NumDiscounts(),
	})
}
