package nutrition

import "github.com/nutridiary/backend/internal/model"

// Targets are the daily nutrient goals. They drive progress display only;
// they never affect what gets calculated or stored.
type Targets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fibre    float64 `json:"fibre"`
}

// Progress describes one nutrient's standing against its daily target.
// Difference is the amount remaining, or the overshoot when Exceeded.
type Progress struct {
	Label       string  `json:"label"`
	Current     float64 `json:"current"`
	Target      float64 `json:"target"`
	DisplayUnit string  `json:"unit"`
	Percent     float64 `json:"percent"`
	Exceeded    bool    `json:"exceeded"`
	Difference  float64 `json:"difference"`
}

// ProgressFor computes a single progress line. Percent is capped at 100.
func ProgressFor(label string, current, target float64, unit string) Progress {
	var pct float64
	switch {
	case target > 0:
		pct = current / target * 100
		if pct > 100 {
			pct = 100
		}
	case current > 0:
		pct = 100
	}
	exceeded := target > 0 && current > target
	diff := target - current
	if exceeded {
		diff = current - target
	}
	return Progress{
		Label:       label,
		Current:     current,
		Target:      target,
		DisplayUnit: unit,
		Percent:     pct,
		Exceeded:    exceeded,
		Difference:  diff,
	}
}

// DailyProgress computes the full set of progress lines for a day's totals.
func DailyProgress(totals model.NutrientTotals, targets Targets) []Progress {
	return []Progress{
		ProgressFor("Calories", float64(totals.Calories), targets.Calories, "kcal"),
		ProgressFor("Protein", totals.Protein, targets.Protein, "g"),
		ProgressFor("Carbs", totals.Carbs, targets.Carbs, "g"),
		ProgressFor("Fat", totals.Fat, targets.Fat, "g"),
		ProgressFor("Fibre", totals.Fibre, targets.Fibre, "g"),
	}
}
