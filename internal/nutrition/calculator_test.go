package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutridiary/backend/internal/model"
)

func TestCalculatePer100g(t *testing.T) {
	// Apple: 52 kcal, 0.3 protein, 13.8 carbs, 0.2 fat, 2.4 fibre per 100g.
	apple := PerUnit{Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, Fibre: 2.4}

	res, err := Calculate(model.ReferencePer100g, apple, 150)
	require.NoError(t, err)

	assert.Equal(t, "g", res.Unit)
	assert.Equal(t, 78, res.Totals.Calories)
	assert.Equal(t, 0.5, res.Totals.Protein)
	assert.Equal(t, 20.7, res.Totals.Carbs)
	assert.Equal(t, 0.3, res.Totals.Fat)
	assert.Equal(t, 3.6, res.Totals.Fibre)
}

func TestCalculateLinearUnit(t *testing.T) {
	bowl := PerUnit{Calories: 80, Protein: 3.5, Carbs: 12, Fat: 2.1, Fibre: 1.2}

	res, err := Calculate("bowl", bowl, 2)
	require.NoError(t, err)

	assert.Equal(t, "bowl", res.Unit)
	assert.Equal(t, 160, res.Totals.Calories)
	assert.Equal(t, 7.0, res.Totals.Protein)
	assert.Equal(t, 24.0, res.Totals.Carbs)
	assert.Equal(t, 4.2, res.Totals.Fat)
	assert.Equal(t, 2.4, res.Totals.Fibre)
}

func TestCalculateRoundsFinalValueOnly(t *testing.T) {
	// 0.249 per unit would round to 0.2 per unit; scaling 10x first gives
	// 2.49 which rounds to 2.5.
	per := PerUnit{Protein: 0.249}

	res, err := Calculate("piece", per, 10)
	require.NoError(t, err)
	assert.Equal(t, 2.5, res.Totals.Protein)
}

func TestCalculateRoundsCaloriesHalfAwayFromZero(t *testing.T) {
	res, err := Calculate("piece", PerUnit{Calories: 0.5}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Totals.Calories)

	res, err = Calculate("piece", PerUnit{Calories: 2.5}, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Totals.Calories)
}

func TestCalculateInvalidQuantity(t *testing.T) {
	per := PerUnit{Calories: 52}

	for _, q := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Calculate("100g", per, q)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestCalculateInvalidPerUnit(t *testing.T) {
	_, err := Calculate("100g", PerUnit{Calories: -52}, 100)
	assert.ErrorIs(t, err, ErrInvalidPerUnit)

	_, err = Calculate("100g", PerUnit{Protein: math.NaN()}, 100)
	assert.ErrorIs(t, err, ErrInvalidPerUnit)
}

func TestCalculateZeroPerUnitValues(t *testing.T) {
	res, err := Calculate("glass", PerUnit{}, 3)
	require.NoError(t, err)
	assert.Equal(t, model.NutrientTotals{}, res.Totals)
}

func TestPerUnitOf(t *testing.T) {
	profile := model.FoodProfile{
		Name: "Apple", Unit: model.ReferencePer100g,
		Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, Fibre: 2.4,
	}
	per := PerUnitOf(profile)
	assert.Equal(t, PerUnit{Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, Fibre: 2.4}, per)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 0.5, Round1(0.45))
	assert.Equal(t, 0.4, Round1(0.44))
	assert.Equal(t, -0.5, Round1(-0.45))
	assert.Equal(t, 2.0, Round1(2.0))
}
