package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/models"
)

type Repository interface {
	ListByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.WorkSchedule, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.WorkSchedule, error)

	// FindOverlapping returns a schedule row of the stylist on the weekday
	// whose interval intersects [start, end), excluding excludeID, or nil.
	FindOverlapping(
		ctx context.Context,
		stylistID uuid.UUID,
		weekday int,
		start string,
		end string,
		excludeID uuid.UUID,
	) (*models.WorkSchedule, error)

	FindForWeekday(ctx context.Context, stylistID uuid.UUID, weekday int) ([]models.WorkSchedule, error)

	Create(ctx context.Context, ws *models.WorkSchedule) error
	Update(ctx context.Context, ws *models.WorkSchedule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UnavailabilityRepository interface {
	ListByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.Unavailability, error)
	ListInRange(ctx context.Context, stylistID uuid.UUID, start, end time.Time) ([]models.Unavailability, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Unavailability, error)
	Create(ctx context.Context, u *models.Unavailability) error
	Update(ctx context.Context, u *models.Unavailability) error
	Delete(ctx context.Context, id uuid.UUID) error
}
