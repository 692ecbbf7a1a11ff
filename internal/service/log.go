package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nutridiary/backend/internal/dateutil"
	"github.com/nutridiary/backend/internal/model"
	"github.com/nutridiary/backend/internal/nutrition"
	"github.com/nutridiary/backend/internal/storage"
)

// EntryInput carries everything needed to calculate and store a log entry.
// PerUnit values are the source of truth; the absolute totals are derived
// from them once, at save time.
type EntryInput struct {
	MealType model.MealType
	FoodName string
	Unit     string
	PerUnit  nutrition.PerUnit
	Quantity float64
	ImageURL string
}

// DayCalories is one day's calorie total in the weekly summary.
type DayCalories struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
}

// LogService is the food log store: an in-memory map from calendar date to
// the day's ordered entries, snapshotted through the persistence bridge on
// every mutation. A date key never holds an empty list.
type LogService struct {
	store        storage.Store
	allowPastAdd bool

	// Now returns the current calendar date; overridable in tests.
	Now func() string

	mu   sync.Mutex
	days map[string][]model.LoggedEntry
}

// NewLogService loads the persisted food log, prunes it to the rolling
// 7-day window ending today, and persists the pruned state.
func NewLogService(ctx context.Context, store storage.Store, allowPastAdd bool) (*LogService, error) {
	s := &LogService{
		store:        store,
		allowPastAdd: allowPastAdd,
		Now:          dateutil.Today,
		days:         make(map[string][]model.LoggedEntry),
	}
	s.load(ctx)
	if err := s.PruneToWindow(ctx, s.Now(), dateutil.LogWindowDays); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the snapshot. A missing or malformed snapshot yields an empty
// log; losing unreadable data beats refusing to start.
func (s *LogService) load(ctx context.Context) {
	data, err := s.store.Load(ctx, storage.MealsKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Failed to load food log snapshot, starting empty: %v", err)
		}
		return
	}
	var days map[string][]model.LoggedEntry
	if err := json.Unmarshal(data, &days); err != nil {
		log.Printf("Malformed food log snapshot, starting empty: %v", err)
		return
	}
	for date, entries := range days {
		if len(entries) > 0 {
			s.days[date] = entries
		}
	}
}

// persist snapshots the full log. Callers hold s.mu.
func (s *LogService) persist(ctx context.Context) error {
	data, err := json.Marshal(s.days)
	if err != nil {
		return fmt.Errorf("failed to encode food log: %w", err)
	}
	if err := s.store.Save(ctx, storage.MealsKey, data); err != nil {
		return fmt.Errorf("failed to persist food log: %w", err)
	}
	return nil
}

// buildEntry validates in and runs the calculator.
func buildEntry(in EntryInput) (model.LoggedEntry, error) {
	if !in.MealType.Valid() {
		return model.LoggedEntry{}, validationf("unknown meal slot %q", in.MealType)
	}
	name := strings.TrimSpace(in.FoodName)
	unit := strings.TrimSpace(in.Unit)
	if name == "" {
		return model.LoggedEntry{}, validationf("food name is required")
	}
	if unit == "" {
		return model.LoggedEntry{}, validationf("unit is required")
	}
	res, err := nutrition.Calculate(unit, in.PerUnit, in.Quantity)
	if err != nil {
		return model.LoggedEntry{}, validationf("%s", err)
	}
	return model.LoggedEntry{
		ID:       uuid.NewString(),
		MealType: in.MealType,
		FoodName: name,
		Quantity: in.Quantity,
		Unit:     res.Unit,
		Calories: res.Totals.Calories,
		Protein:  res.Totals.Protein,
		Carbs:    res.Totals.Carbs,
		Fat:      res.Totals.Fat,
		Fibre:    res.Totals.Fibre,
		ImageURL: in.ImageURL,
	}, nil
}

// AddEntry calculates and appends a new entry to date's list. New entries
// may only target today unless the allow-past-add policy is on, in which
// case any date inside the visible window is accepted.
func (s *LogService) AddEntry(ctx context.Context, date string, in EntryInput) (model.LoggedEntry, error) {
	if !dateutil.Valid(date) {
		return model.LoggedEntry{}, validationf("invalid date %q", date)
	}
	today := s.Now()
	if date > today {
		return model.LoggedEntry{}, validationf("cannot log entries for a future date")
	}
	if !s.allowPastAdd && date != today {
		return model.LoggedEntry{}, validationf("entries can only be logged for today")
	}
	if s.allowPastAdd && !dateutil.InWindow(date, today, dateutil.LogWindowDays) {
		return model.LoggedEntry{}, validationf("date %s is outside the visible window", date)
	}

	entry, err := buildEntry(in)
	if err != nil {
		return model.LoggedEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.days[date] = append(s.days[date], entry)
	if err := s.persist(ctx); err != nil {
		return model.LoggedEntry{}, err
	}
	return entry, nil
}

// EditEntry replaces the entry with the given id in place, at the same list
// position. The replacement's totals are recalculated from the supplied
// per-unit values; the old totals are never adjusted incrementally. The
// stored image URL survives the edit unless the input carries a new one.
func (s *LogService) EditEntry(ctx context.Context, date, id string, in EntryInput) (model.LoggedEntry, error) {
	if !dateutil.Valid(date) {
		return model.LoggedEntry{}, validationf("invalid date %q", date)
	}
	entry, err := buildEntry(in)
	if err != nil {
		return model.LoggedEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.days[date]
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		entry.ID = id
		if entry.ImageURL == "" {
			entry.ImageURL = entries[i].ImageURL
		}
		entries[i] = entry
		if err := s.persist(ctx); err != nil {
			return model.LoggedEntry{}, err
		}
		return entry, nil
	}
	return model.LoggedEntry{}, ErrNotFound
}

// DeleteEntry removes the entry with the given id. Deleting the last entry
// for a date removes the date key entirely. An unknown id is a no-op.
func (s *LogService) DeleteEntry(ctx context.Context, date, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, ok := s.days[date]
	if !ok {
		return nil
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}
	if len(kept) == 0 {
		delete(s.days, date)
	} else {
		s.days[date] = kept
	}
	return s.persist(ctx)
}

// CopyDay clones every entry of sourceDate onto targetDate with fresh ids,
// overwriting whatever targetDate held. Totals, names, units, quantities and
// meal slots are preserved exactly.
func (s *LogService) CopyDay(ctx context.Context, sourceDate, targetDate string) ([]model.LoggedEntry, error) {
	if !dateutil.Valid(sourceDate) || !dateutil.Valid(targetDate) {
		return nil, validationf("invalid date")
	}
	if sourceDate == targetDate {
		return nil, validationf("cannot copy a day onto itself")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	source := s.days[sourceDate]
	if len(source) == 0 {
		return nil, validationf("no entries to copy from %s", sourceDate)
	}
	copied := make([]model.LoggedEntry, len(source))
	for i, e := range source {
		e.ID = uuid.NewString()
		copied[i] = e
	}
	s.days[targetDate] = copied
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return copied, nil
}

// Entries returns date's entries in insertion order.
func (s *LogService) Entries(date string) []model.LoggedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.days[date]
	out := make([]model.LoggedEntry, len(entries))
	copy(out, entries)
	return out
}

// DailyTotals sums the stored totals across date's entries. A date with no
// entries yields all zeros.
func (s *LogService) DailyTotals(date string) model.NutrientTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	var totals model.NutrientTotals
	for _, e := range s.days[date] {
		totals = totals.Add(e.Totals())
	}
	return totals
}

// WeeklySummary returns per-day calorie totals for the 7 days ending at ref
// and their average. Days without entries count as zero.
func (s *LogService) WeeklySummary(ref string) ([]DayCalories, float64, error) {
	days, err := dateutil.LastNDays(ref, dateutil.LogWindowDays)
	if err != nil {
		return nil, 0, validationf("invalid date %q", ref)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	summary := make([]DayCalories, len(days))
	sum := 0
	for i, d := range days {
		calories := 0
		for _, e := range s.days[d] {
			calories += e.Calories
		}
		summary[i] = DayCalories{Date: d, Calories: calories}
		sum += calories
	}
	return summary, float64(sum) / float64(len(days)), nil
}

// PruneToWindow discards every date outside the windowDays-day window
// ending at referenceDate. Pruned days are gone for good.
func (s *LogService) PruneToWindow(ctx context.Context, referenceDate string, windowDays int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for date := range s.days {
		if !dateutil.InWindow(date, referenceDate, windowDays) {
			delete(s.days, date)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.persist(ctx)
}

// Dates returns the dates that currently hold entries, unordered.
func (s *LogService) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	dates := make([]string, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	return dates
}
