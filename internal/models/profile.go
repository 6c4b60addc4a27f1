package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin   = "admin"
	RoleStylist = "stylist"
	RoleClient  = "client"
)

// Profile bridges the external auth identity and domain data. Its ID is the
// identity id assigned by the auth service, never generated locally.
type Profile struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Role string    `gorm:"size:20;not null;default:'client'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
