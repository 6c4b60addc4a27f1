package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unavailability is a one-off blocked period for a stylist (vacation,
// sick leave, ...), as opposed to the recurring WorkSchedule rows.
type Unavailability struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	StylistID uuid.UUID `gorm:"type:uuid;not null;index" json:"stylist_id"`
	Stylist   Stylist   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartDatetime time.Time `gorm:"not null" json:"start_datetime"`
	EndDatetime   time.Time `gorm:"not null" json:"end_datetime"`
	IsAllDay      bool      `gorm:"default:false" json:"is_all_day"`
	Reason        *string   `gorm:"size:255" json:"reason"`
	Type          string    `gorm:"size:20;default:'other'" json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *Unavailability) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
