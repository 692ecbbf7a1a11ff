package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/nutridiary/backend/internal/dateutil"
	"github.com/nutridiary/backend/internal/model"
	"github.com/nutridiary/backend/internal/storage"
)

// Fallback trend bounds when no measurements exist, so a chart can still
// lay out its axis. These are placeholders, not real weights.
const (
	trendFallbackMin = 0
	trendFallbackMax = 100
)

// WeightService is the body-weight store: one measurement per calendar
// date, upserted, snapshotted on every mutation.
type WeightService struct {
	store storage.Store

	// Now returns the current calendar date; overridable in tests.
	Now func() string

	mu   sync.Mutex
	logs []model.WeightLog
}

// NewWeightService loads the persisted weight log.
func NewWeightService(ctx context.Context, store storage.Store) *WeightService {
	s := &WeightService{store: store, Now: dateutil.Today}
	s.load(ctx)
	return s
}

// load reads the snapshot; malformed data yields an empty log.
func (s *WeightService) load(ctx context.Context) {
	data, err := s.store.Load(ctx, storage.WeightKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Failed to load weight log snapshot, starting empty: %v", err)
		}
		return
	}
	if err := json.Unmarshal(data, &s.logs); err != nil {
		log.Printf("Malformed weight log snapshot, starting empty: %v", err)
		s.logs = nil
	}
}

func (s *WeightService) persist(ctx context.Context) error {
	logs := s.logs
	if logs == nil {
		logs = []model.WeightLog{}
	}
	data, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("failed to encode weight log: %w", err)
	}
	if err := s.store.Save(ctx, storage.WeightKey, data); err != nil {
		return fmt.Errorf("failed to persist weight log: %w", err)
	}
	return nil
}

// LogWeight upserts the measurement for date: any prior entry for that date
// is dropped and the new one appended. An empty date means today. Future
// dates are rejected.
func (s *WeightService) LogWeight(ctx context.Context, date string, weight float64) error {
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return validationf("please enter a valid weight")
	}
	if date == "" {
		date = s.Now()
	}
	if !dateutil.Valid(date) {
		return validationf("invalid date %q", date)
	}
	if date > s.Now() {
		return validationf("cannot log weight for a future date")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.logs[:0]
	for _, l := range s.logs {
		if l.Date != date {
			kept = append(kept, l)
		}
	}
	s.logs = append(kept, model.WeightLog{Date: date, Weight: weight})
	return s.persist(ctx)
}

// Trend returns one point per day for the windowDays-day window ending at
// referenceDate. Days without a measurement carry a nil weight; gaps are
// left as gaps, never interpolated.
func (s *WeightService) Trend(referenceDate string, windowDays int) ([]model.TrendPoint, error) {
	days, err := dateutil.LastNDays(referenceDate, windowDays)
	if err != nil {
		return nil, validationf("invalid date %q", referenceDate)
	}
	s.mu.Lock()
	byDate := make(map[string]float64, len(s.logs))
	for _, l := range s.logs {
		byDate[l.Date] = l.Weight
	}
	s.mu.Unlock()

	points := make([]model.TrendPoint, len(days))
	for i, d := range days {
		points[i] = model.TrendPoint{Date: d}
		if w, ok := byDate[d]; ok {
			weight := w
			points[i].Weight = &weight
		}
	}
	return points, nil
}

// MinMax computes the bounds over the non-nil points. With no measurements
// it reports the 0/100 placeholder range.
func MinMax(points []model.TrendPoint) (min, max float64) {
	first := true
	for _, p := range points {
		if p.Weight == nil {
			continue
		}
		if first {
			min, max = *p.Weight, *p.Weight
			first = false
			continue
		}
		if *p.Weight < min {
			min = *p.Weight
		}
		if *p.Weight > max {
			max = *p.Weight
		}
	}
	if first {
		return trendFallbackMin, trendFallbackMax
	}
	return min, max
}

// Logs returns all measurements in insertion order.
func (s *WeightService) Logs() []model.WeightLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.WeightLog, len(s.logs))
	copy(out, s.logs)
	return out
}
