package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StylistID uuid.UUID `gorm:"type:uuid;not null" json:"stylist_id"`
	Stylist   Stylist   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	Status string  `gorm:"size:20;default:'pending'" json:"status"`
	Notes  *string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
