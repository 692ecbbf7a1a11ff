package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutridiary/backend/internal/service"
)

// PerUnitRequest carries user-supplied nutritional values per unit.
type PerUnitRequest struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fibre    float64 `json:"fibre"`
}

// EntryRequest logs or edits a food entry. Either food_name references a
// catalog profile, or per_unit plus unit describe a custom food.
type EntryRequest struct {
	MealType string          `json:"meal_type" binding:"required"`
	Quantity float64         `json:"quantity" binding:"required"`
	FoodName string          `json:"food_name"`
	Unit     string          `json:"unit"`
	PerUnit  *PerUnitRequest `json:"per_unit"`
	ImageURL string          `json:"image_url"`
}

// CopyDayRequest copies one day's entries onto another.
type CopyDayRequest struct {
	SourceDate string `json:"source_date" binding:"required"`
	TargetDate string `json:"target_date" binding:"required"`
}

// WeightRequest upserts a weight measurement. Date defaults to today.
type WeightRequest struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight" binding:"required"`
}

// RegisterRequest creates a user account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest authenticates a user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
