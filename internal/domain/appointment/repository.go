package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/models"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)

	Create(ctx context.Context, ap *models.Appointment) error
	Update(ctx context.Context, ap *models.Appointment) error

	// AssertNoTimeConflict fails with a business error when another pending
	// or confirmed appointment of the stylist overlaps [start, end).
	AssertNoTimeConflict(
		ctx context.Context,
		stylistID uuid.UUID,
		start time.Time,
		end time.Time,
	) error

	ListForPeriod(
		ctx context.Context,
		stylistID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListForDay(
		ctx context.Context,
		stylistID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// ListStartingBetween returns appointments of the given status whose
	// start time falls in the window, contact fields preloaded.
	ListStartingBetween(
		ctx context.Context,
		status string,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)
}
