package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutridiary/backend/internal/model"
	"github.com/nutridiary/backend/internal/service"
)

// CatalogHandler serves the food catalog endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// RegisterRoutes wires the catalog endpoints onto the router group.
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	catalogGroup := router.Group("/catalog")
	{
		catalogGroup.GET("/foods", h.SearchFoods)
		catalogGroup.GET("/suggestions/:meal", h.GetSuggestions)
	}
}

// SearchFoods searches catalog foods by name substring. An empty query
// returns an empty list.
func (h *CatalogHandler) SearchFoods(c *gin.Context) {
	foods, err := h.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

// GetSuggestions returns the curated foods for a meal slot.
func (h *CatalogHandler) GetSuggestions(c *gin.Context) {
	foods, err := h.catalog.Suggestions(c.Request.Context(), model.MealType(c.Param("meal")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}
