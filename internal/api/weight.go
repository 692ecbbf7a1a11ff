package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutridiary/backend/internal/dateutil"
	"github.com/nutridiary/backend/internal/service"
)

// WeightHandler serves the weight tracking endpoints.
type WeightHandler struct {
	weights *service.WeightService
}

// NewWeightHandler creates a new WeightHandler instance.
func NewWeightHandler(weights *service.WeightService) *WeightHandler {
	return &WeightHandler{weights: weights}
}

// RegisterRoutes wires the weight endpoints onto the router group.
func (h *WeightHandler) RegisterRoutes(router *gin.RouterGroup) {
	weightGroup := router.Group("/weight")
	{
		weightGroup.POST("", h.LogWeight)
		weightGroup.GET("/trend", h.GetTrend)
	}
}

// LogWeight records a weight for a date, replacing any existing measurement
// on that date.
func (h *WeightHandler) LogWeight(c *gin.Context) {
	var req WeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.weights.LogWeight(c.Request.Context(), req.Date, req.Weight); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTrend returns the last 14 days of weights, with nulls on days that
// have no measurement, plus the axis bounds for charting.
func (h *WeightHandler) GetTrend(c *gin.Context) {
	points, err := h.weights.Trend(h.weights.Now(), dateutil.WeightWindowDays)
	if err != nil {
		respondError(c, err)
		return
	}
	min, max := service.MinMax(points)
	c.JSON(http.StatusOK, gin.H{
		"points": points,
		"min":    min,
		"max":    max,
	})
}
