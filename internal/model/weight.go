package model

// WeightLog is a single body-weight measurement. At most one per date;
// logging again for the same date overwrites.
type WeightLog struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// TrendPoint is one day in the weight trend window. Weight is nil for days
// without a measurement; gaps are not interpolated, charting skips them.
type TrendPoint struct {
	Date   string   `json:"date"`
	Weight *float64 `json:"weight"`
}
