package planner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/audit"
	domain "github.com/luminasalon/salon-manager/internal/domain/schedule"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
	"github.com/luminasalon/salon-manager/internal/schema"
)

// Planner manages recurring work schedules and one-off blocked periods.
type Planner struct {
	schedules domain.Repository
	unavail   domain.UnavailabilityRepository
	audit     *audit.Dispatcher
	loc       *time.Location
}

func New(
	schedules domain.Repository,
	unavail domain.UnavailabilityRepository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *Planner {
	return &Planner{
		schedules: schedules,
		unavail:   unavail,
		audit:     audit,
		loc:       loc,
	}
}

// --------------------------------------------------
// Work schedules
// --------------------------------------------------

// WeekFor returns the stylist's schedule grouped by weekday for display.
func (uc *Planner) WeekFor(ctx context.Context, stylistID uuid.UUID) (domain.Week, error) {
	rows, err := uc.schedules.ListByStylist(ctx, stylistID)
	if err != nil {
		return domain.Week{}, err
	}
	return domain.GroupByWeekday(rows), nil
}

func (uc *Planner) AddInterval(
	ctx context.Context,
	actorID *uuid.UUID,
	in *schema.WorkScheduleInput,
) (*models.WorkSchedule, error) {

	if err := uc.assertNoOverlap(ctx, in, uuid.Nil); err != nil {
		return nil, err
	}

	ws := &models.WorkSchedule{
		StylistID: in.StylistID,
		Weekday:   in.Weekday,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}

	if err := uc.schedules.Create(ctx, ws); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "schedule_created",
		Entity:   "work_schedule",
		EntityID: &ws.ID,
	})

	return ws, nil
}

func (uc *Planner) UpdateInterval(
	ctx context.Context,
	actorID *uuid.UUID,
	id uuid.UUID,
	in *schema.WorkScheduleInput,
) (*models.WorkSchedule, error) {

	ws, err := uc.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, httperr.ErrBusiness("schedule_not_found")
	}

	if err := uc.assertNoOverlap(ctx, in, id); err != nil {
		return nil, err
	}

	ws.Weekday = in.Weekday
	ws.StartTime = in.StartTime
	ws.EndTime = in.EndTime

	if err := uc.schedules.Update(ctx, ws); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "schedule_updated",
		Entity:   "work_schedule",
		EntityID: &ws.ID,
	})

	return ws, nil
}

func (uc *Planner) RemoveInterval(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	if err := uc.schedules.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "schedule_deleted",
		Entity:   "work_schedule",
		EntityID: &id,
	})

	return nil
}

func (uc *Planner) assertNoOverlap(ctx context.Context, in *schema.WorkScheduleInput, selfID uuid.UUID) error {
	existing, err := uc.schedules.FindOverlapping(
		ctx,
		in.StylistID,
		in.Weekday,
		in.StartTime,
		in.EndTime,
		selfID,
	)
	if err != nil {
		return err
	}
	if existing != nil {
		return httperr.ErrBusiness("schedule_conflict")
	}
	return nil
}

// --------------------------------------------------
// Unavailability
// --------------------------------------------------

func (uc *Planner) ListUnavailability(ctx context.Context, stylistID uuid.UUID) ([]models.Unavailability, error) {
	return uc.unavail.ListByStylist(ctx, stylistID)
}

func (uc *Planner) AddUnavailability(
	ctx context.Context,
	actorID *uuid.UUID,
	in *schema.UnavailabilityInput,
) (*models.Unavailability, error) {

	start, err := time.ParseInLocation("2006-01-02 15:04", in.StartDatetime, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", in.EndDatetime, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	u := &models.Unavailability{
		StylistID:     in.StylistID,
		StartDatetime: start,
		EndDatetime:   end,
		IsAllDay:      in.IsAllDay,
		Reason:        in.Reason,
		Type:          in.Type,
	}

	if err := uc.unavail.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "unavailability_created",
		Entity:   "unavailability",
		EntityID: &u.ID,
	})

	return u, nil
}

func (uc *Planner) RemoveUnavailability(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	if err := uc.unavail.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "unavailability_deleted",
		Entity:   "unavailability",
		EntityID: &id,
	})

	return nil
}
