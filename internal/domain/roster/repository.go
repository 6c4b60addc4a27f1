package roster

import (
	"context"

	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/models"
)

type StylistRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Stylist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Stylist, error)
	FindByEmail(ctx context.Context, email string) (*models.Stylist, error)
	FindByPhone(ctx context.Context, phone string) (*models.Stylist, error)
	Create(ctx context.Context, s *models.Stylist) error
	Update(ctx context.Context, s *models.Stylist) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OfferingRepository interface {
	List(ctx context.Context) ([]models.ServiceOffered, error)
	ListByStylist(ctx context.Context, stylistID uuid.UUID, activeOnly bool) ([]models.ServiceOffered, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceOffered, error)
	FindByPair(ctx context.Context, stylistID, serviceID uuid.UUID) (*models.ServiceOffered, error)
	Create(ctx context.Context, o *models.ServiceOffered) error
	Update(ctx context.Context, o *models.ServiceOffered) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Create(ctx context.Context, p *models.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}
