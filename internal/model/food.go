package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferencePer100g is the special reference unit meaning "per 100 grams".
// A profile carrying it has its per-unit values scaled by quantity/100 and
// logs in grams; every other unit string is an opaque per-unit label
// (scoop, piece, bowl) scaled linearly.
const ReferencePer100g = "100g"

// FoodProfile is a catalog entry: nutritional values per reference unit.
// The catalog is read-only at runtime; rows are seeded once.
type FoodProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Name      string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Unit      string    `gorm:"size:32;not null" json:"unit"`
	Calories  float64   `gorm:"type:float" json:"calories"`
	Protein   float64   `gorm:"type:float" json:"protein"`
	Carbs     float64   `gorm:"type:float" json:"carbs"`
	Fat       float64   `gorm:"type:float" json:"fat"`
	Fibre     float64   `gorm:"type:float" json:"fibre"`
	ImageURL  string    `gorm:"size:255" json:"imageUrl,omitempty"`
}

// BeforeCreate assigns an ID so the model works on both postgres and sqlite.
func (f *FoodProfile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
