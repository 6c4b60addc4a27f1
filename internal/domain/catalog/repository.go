package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/models"
)

// Filter narrows a service listing; zero value means no filtering.
type Filter struct {
	Category string
	Active   *bool
	Query    string
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]models.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	FindByName(ctx context.Context, name string) (*models.Service, error)
	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}
