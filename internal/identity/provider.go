// Package identity wraps the managed auth service. Account provisioning and
// credential verification are delegated to it entirely; the app only keeps
// the returned identity id.
package identity

import (
	"context"

	"github.com/google/uuid"
)

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type Provider interface {
	// CreateUser provisions an identity for the email. The password may be
	// empty, in which case the service generates one and mails an invite.
	CreateUser(ctx context.Context, email, password string) (*User, error)

	// DeleteUser is the compensating action for CreateUser.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// SignIn verifies credentials and returns the identity on success.
	SignIn(ctx context.Context, email, password string) (*User, error)
}
