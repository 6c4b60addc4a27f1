package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stylist is tied 1:1 to an identity in the external auth service via
// ProfileID. Creating one provisions the auth account first.
type Stylist struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ProfileID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"profile_id"`
	Profile   Profile   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FullName       string  `gorm:"size:100;not null" json:"full_name"`
	Email          string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone          string  `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Description    *string `gorm:"size:500" json:"description"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`
	ProfilePicture *string `gorm:"size:255" json:"profile_picture"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Stylist) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
