package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nutridiary/backend/internal/model"
)

// CatalogService serves the read-only food catalog.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Search returns catalog foods whose name contains query, case-insensitive.
// An empty query returns nothing; the empty-search state is served by the
// per-slot suggestions instead.
func (s *CatalogService) Search(ctx context.Context, query string) ([]model.FoodProfile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.FoodProfile{}, nil
	}
	var foods []model.FoodProfile
	like := "%" + strings.ToLower(query) + "%"
	if err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", like).
		Order("name").
		Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}
	return foods, nil
}

// Get looks up a single catalog food by its exact name.
func (s *CatalogService) Get(ctx context.Context, name string) (*model.FoodProfile, error) {
	var food model.FoodProfile
	if err := s.db.WithContext(ctx).First(&food, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

// Suggestions returns the curated starter foods for a meal slot, in their
// curated order. Foods missing from the catalog are skipped.
func (s *CatalogService) Suggestions(ctx context.Context, meal model.MealType) ([]model.FoodProfile, error) {
	if !meal.Valid() {
		return nil, validationf("unknown meal slot %q", meal)
	}
	names := mealSuggestions[meal]
	var foods []model.FoodProfile
	if err := s.db.WithContext(ctx).Where("name IN ?", names).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}
	byName := make(map[string]model.FoodProfile, len(foods))
	for _, f := range foods {
		byName[f.Name] = f
	}
	ordered := make([]model.FoodProfile, 0, len(names))
	for _, n := range names {
		if f, ok := byName[n]; ok {
			ordered = append(ordered, f)
		}
	}
	return ordered, nil
}

// Seed inserts the built-in catalog. Existing rows are left untouched, so
// seeding is idempotent.
func (s *CatalogService) Seed(ctx context.Context) error {
	for _, f := range defaultProfiles {
		food := f
		err := s.db.WithContext(ctx).
			Where(model.FoodProfile{Name: food.Name}).
			FirstOrCreate(&food).Error
		if err != nil {
			return fmt.Errorf("failed to seed %q: %w", food.Name, err)
		}
	}
	return nil
}
