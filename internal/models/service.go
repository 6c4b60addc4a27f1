package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Description     *string `gorm:"size:500" json:"description"`
	DurationMinutes int     `gorm:"not null" json:"duration_minutes"`
	Price           float64 `gorm:"not null" json:"price"`
	Category        *string `gorm:"size:50" json:"category"`
	IsActive        bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
