package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceOffered links a stylist to a service from the catalog, optionally
// overriding price or duration. At most one row per (stylist, service) pair.
type ServiceOffered struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	StylistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stylist_service" json:"stylist_id"`
	Stylist   Stylist   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"stylist"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stylist_service" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	CustomPrice    *float64 `json:"custom_price"`
	CustomDuration *int     `json:"custom_duration"`
	IsActive       bool     `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ServiceOffered) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// EffectivePrice returns the custom price when set, the catalog price otherwise.
func (s *ServiceOffered) EffectivePrice() float64 {
	if s.CustomPrice != nil {
		return *s.CustomPrice
	}
	return s.Service.Price
}

// EffectiveDuration returns the duration in minutes, honoring the override.
func (s *ServiceOffered) EffectiveDuration() int {
	if s.CustomDuration != nil {
		return *s.CustomDuration
	}
	return s.Service.DurationMinutes
}
