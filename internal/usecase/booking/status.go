package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/audit"
	appt "github.com/luminasalon/salon-manager/internal/domain/appointment"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
)

func (uc *Booking) Confirm(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*models.Appointment, error) {
	return uc.transition(ctx, actorID, id, appt.Confirm, "appointment_confirmed")
}

func (uc *Booking) Cancel(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*models.Appointment, error) {
	return uc.transition(ctx, actorID, id, appt.Cancel, "appointment_cancelled")
}

func (uc *Booking) Complete(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*models.Appointment, error) {
	return uc.transition(ctx, actorID, id, appt.Complete, "appointment_completed")
}

func (uc *Booking) transition(
	ctx context.Context,
	actorID *uuid.UUID,
	id uuid.UUID,
	apply func(*models.Appointment) error,
	action string,
) (*models.Appointment, error) {

	ap, err := uc.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := apply(ap); err != nil {
		return nil, err
	}

	if err := uc.appointments.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// ListForDay returns a stylist's appointments for the calendar day of date,
// in the salon timezone.
func (uc *Booking) ListForDay(
	ctx context.Context,
	stylistID uuid.UUID,
	date time.Time,
) ([]models.Appointment, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)
	end := start.Add(24 * time.Hour)

	return uc.appointments.ListForPeriod(ctx, stylistID, start, end)
}
