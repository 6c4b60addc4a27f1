package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkSchedule is one recurring availability interval for a stylist on a
// weekday (0 = Sunday). Times are "15:04" strings in the salon timezone.
type WorkSchedule struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	StylistID uuid.UUID `gorm:"type:uuid;not null;index" json:"stylist_id"`
	Stylist   Stylist   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Weekday   int    `gorm:"not null" json:"weekday"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *WorkSchedule) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
