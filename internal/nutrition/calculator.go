// Package nutrition implements the nutrient calculator: pure scaling of
// per-unit macro values into the absolute totals stored on a log entry.
package nutrition

import (
	"errors"
	"math"

	"github.com/nutridiary/backend/internal/model"
)

var (
	// ErrInvalidQuantity is returned when the quantity is not a positive
	// finite number.
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
	// ErrInvalidPerUnit is returned when a per-unit value is negative or
	// not a finite number.
	ErrInvalidPerUnit = errors.New("per-unit values must be non-negative numbers")
)

// PerUnit holds nutritional values per reference unit of a food.
type PerUnit struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fibre    float64 `json:"fibre"`
}

// PerUnitOf extracts the per-unit values from a catalog profile.
func PerUnitOf(p model.FoodProfile) PerUnit {
	return PerUnit{
		Calories: p.Calories,
		Protein:  p.Protein,
		Carbs:    p.Carbs,
		Fat:      p.Fat,
		Fibre:    p.Fibre,
	}
}

// Result is the outcome of a calculation: absolute rounded totals and the
// unit the quantity is displayed in.
type Result struct {
	Totals model.NutrientTotals
	Unit   string
}

// Calculate scales per-unit values by quantity and rounds the final totals.
//
// If referenceUnit is "100g" the quantity is grams and each value is scaled
// by quantity/100, with "g" as the display unit. Any other unit scales
// linearly and is kept as the display unit. Calories round to the nearest
// integer, the macros to one decimal, both half away from zero, applied to
// the final scaled value only.
func Calculate(referenceUnit string, per PerUnit, quantity float64) (Result, error) {
	if !positiveFinite(quantity) {
		return Result{}, ErrInvalidQuantity
	}
	for _, v := range []float64{per.Calories, per.Protein, per.Carbs, per.Fat, per.Fibre} {
		if !nonNegativeFinite(v) {
			return Result{}, ErrInvalidPerUnit
		}
	}

	factor := quantity
	unit := referenceUnit
	if referenceUnit == model.ReferencePer100g {
		factor = quantity / 100
		unit = "g"
	}

	return Result{
		Totals: model.NutrientTotals{
			Calories: int(math.Round(per.Calories * factor)),
			Protein:  Round1(per.Protein * factor),
			Carbs:    Round1(per.Carbs * factor),
			Fat:      Round1(per.Fat * factor),
			Fibre:    Round1(per.Fibre * factor),
		},
		Unit: unit,
	}, nil
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func nonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}
