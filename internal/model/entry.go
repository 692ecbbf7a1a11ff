package model

// MealType is the slot a logged entry is filed under.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealSnacks    MealType = "Snacks"
	MealDinner    MealType = "Dinner"
)

// MealTypes lists the slots in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealSnacks, MealDinner}

// Valid reports whether m is one of the known meal slots.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealSnacks, MealDinner:
		return true
	}
	return false
}

// NutrientTotals holds absolute nutrient amounts. Calories are whole kcal,
// the macros are grams rounded to one decimal.
type NutrientTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fibre    float64 `json:"fibre"`
}

// Add returns the element-wise sum of t and o.
func (t NutrientTotals) Add(o NutrientTotals) NutrientTotals {
	return NutrientTotals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fat:      t.Fat + o.Fat,
		Fibre:    t.Fibre + o.Fibre,
	}
}

// LoggedEntry is one food item logged against a meal slot. The nutrient
// totals are computed once at save time and stored denormalized; they are
// replaced wholesale when the entry is edited, never adjusted incrementally.
//
// The JSON field names match the persisted snapshot layout and must not
// change without bumping the snapshot key version.
type LoggedEntry struct {
	ID       string   `json:"id"`
	MealType MealType `json:"mealType"`
	FoodName string   `json:"foodName"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
	Calories int      `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Fibre    float64  `json:"fibre"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

// Totals returns the entry's stored nutrient totals.
func (e LoggedEntry) Totals() NutrientTotals {
	return NutrientTotals{
		Calories: e.Calories,
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fat:      e.Fat,
		Fibre:    e.Fibre,
	}
}
