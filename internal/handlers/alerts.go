package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pricepulse/comparator-service/internal/alerts"
)

// CreateAlertRequest registers a price alert for a product.
type CreateAlertRequest struct {
	ProductName string  `json:"productName" binding:"required"`
	TargetPrice float64 `json:"targetPrice" binding:"required,gt=0"`
	UserEmail   string  `json:"userEmail" binding:"required,email"`
}

// CreateAlert stores a new price alert.
// POST /api/v1/alerts
func CreateAlert(c *gin.Context) {
	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a := alertSvc.Store().Add(req.ProductName, req.TargetPrice, req.UserEmail)
	c.JSON(http.StatusCreated, a)
}

// ListAlerts returns every stored alert.
// GET /api/v1/alerts
func ListAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, alertSvc.Store().All())
}

// TriggeredAlerts returns the alerts satisfied by some offer on a date.
// GET /api/v1/alerts/triggered?date=
func TriggeredAlerts(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	triggered := alertSvc.Triggered(Snapshot(), date)
	if triggered == nil {
		triggered = []alerts.TriggeredAlert{}
	}
	c.JSON(http.StatusOK, triggered)
}
