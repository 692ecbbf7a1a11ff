package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the signed-in identity. It exists for display only; the food and
// weight logs are not partitioned per user.
type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

// BeforeCreate assigns an ID so the model works on both postgres and sqlite.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
