package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutridiary/backend/internal/dateutil"
	"github.com/nutridiary/backend/internal/model"
	"github.com/nutridiary/backend/internal/nutrition"
	"github.com/nutridiary/backend/internal/service"
)

// LogHandler serves the food log endpoints.
type LogHandler struct {
	logs    *service.LogService
	catalog *service.CatalogService
	targets nutrition.Targets
}

// NewLogHandler creates a new LogHandler instance.
func NewLogHandler(logs *service.LogService, catalog *service.CatalogService, targets nutrition.Targets) *LogHandler {
	return &LogHandler{logs: logs, catalog: catalog, targets: targets}
}

// RegisterRoutes wires the log endpoints onto the router group.
func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logGroup := router.Group("/log")
	{
		logGroup.GET("/window", h.GetWindow)
		logGroup.GET("/week/summary", h.GetWeeklySummary)
		logGroup.POST("/copy", h.CopyDay)
		logGroup.GET("/:date", h.GetDay)
		logGroup.POST("/:date/entries", h.AddEntry)
		logGroup.PUT("/:date/entries/:id", h.EditEntry)
		logGroup.DELETE("/:date/entries/:id", h.DeleteEntry)
	}
	router.GET("/targets", h.GetTargets)
}

// entryInput resolves a request into calculator input. A request without
// per-unit values must name a catalog food, which supplies them.
func (h *LogHandler) entryInput(ctx context.Context, req EntryRequest) (service.EntryInput, error) {
	in := service.EntryInput{
		MealType: model.MealType(req.MealType),
		FoodName: req.FoodName,
		Quantity: req.Quantity,
		ImageURL: req.ImageURL,
	}
	if req.PerUnit != nil {
		in.Unit = req.Unit
		in.PerUnit = nutrition.PerUnit{
			Calories: req.PerUnit.Calories,
			Protein:  req.PerUnit.Protein,
			Carbs:    req.PerUnit.Carbs,
			Fat:      req.PerUnit.Fat,
			Fibre:    req.PerUnit.Fibre,
		}
		return in, nil
	}

	food, err := h.catalog.Get(ctx, req.FoodName)
	if err != nil {
		return service.EntryInput{}, err
	}
	in.FoodName = food.Name
	in.Unit = food.Unit
	in.PerUnit = nutrition.PerUnitOf(*food)
	if in.ImageURL == "" {
		in.ImageURL = food.ImageURL
	}
	return in, nil
}

// GetWindow reports today, the oldest navigable date, and the visible days.
func (h *LogHandler) GetWindow(c *gin.Context) {
	today := h.logs.Now()
	days, err := dateutil.LastNDays(today, dateutil.LogWindowDays)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"today":  today,
		"oldest": days[0],
		"days":   days,
	})
}

// MealGroup is one meal slot's entries in a day view.
type MealGroup struct {
	MealType model.MealType      `json:"meal_type"`
	Entries  []model.LoggedEntry `json:"entries"`
}

// GetDay returns a day's entries grouped by meal slot, with totals and
// progress against targets.
func (h *LogHandler) GetDay(c *gin.Context) {
	date := c.Param("date")
	if !dateutil.Valid(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	entries := h.logs.Entries(date)
	meals := make([]MealGroup, len(model.MealTypes))
	for i, meal := range model.MealTypes {
		meals[i] = MealGroup{MealType: meal, Entries: []model.LoggedEntry{}}
		for _, e := range entries {
			if e.MealType == meal {
				meals[i].Entries = append(meals[i].Entries, e)
			}
		}
	}
	totals := h.logs.DailyTotals(date)
	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"meals":    meals,
		"entries":  entries,
		"totals":   totals,
		"progress": nutrition.DailyProgress(totals, h.targets),
	})
}

// AddEntry logs a new food entry for the date.
func (h *LogHandler) AddEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := h.entryInput(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown food: " + req.FoodName})
			return
		}
		respondError(c, err)
		return
	}
	entry, err := h.logs.AddEntry(c.Request.Context(), c.Param("date"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// EditEntry replaces an entry wholesale from per-unit values.
func (h *LogHandler) EditEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PerUnit == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "per_unit values are required when editing"})
		return
	}
	in, err := h.entryInput(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	entry, err := h.logs.EditEntry(c.Request.Context(), c.Param("date"), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes an entry. Unknown ids are a no-op, not an error.
func (h *LogHandler) DeleteEntry(c *gin.Context) {
	if err := h.logs.DeleteEntry(c.Request.Context(), c.Param("date"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CopyDay clones one day's entries onto another, overwriting the target.
func (h *LogHandler) CopyDay(c *gin.Context) {
	var req CopyDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	copied, err := h.logs.CopyDay(c.Request.Context(), req.SourceDate, req.TargetDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"target_date": req.TargetDate,
		"entries":     copied,
	})
}

// GetWeeklySummary returns per-day calories over the last 7 days and their
// average.
func (h *LogHandler) GetWeeklySummary(c *gin.Context) {
	days, average, err := h.logs.WeeklySummary(h.logs.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"days":    days,
		"average": average,
	})
}

// GetTargets returns the configured daily nutrient goals.
func (h *LogHandler) GetTargets(c *gin.Context) {
	c.JSON(http.StatusOK, h.targets)
}
