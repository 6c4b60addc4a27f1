package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/audit"
	appt "github.com/luminasalon/salon-manager/internal/domain/appointment"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
	"github.com/luminasalon/salon-manager/internal/schema"
)

// Create books an appointment from the public form. The stored start/end are
// derived once from the submitted date, time and effective duration.
func (uc *Booking) Create(ctx context.Context, in *schema.BookingInput) (*models.Appointment, error) {

	stylist, err := uc.stylists.GetByID(ctx, in.StylistID)
	if err != nil {
		return nil, err
	}
	if stylist == nil || !stylist.IsActive {
		return nil, httperr.ErrBusiness("stylist_not_found")
	}

	service, err := uc.services.GetByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.IsActive {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	duration, err := uc.effectiveDuration(ctx, in.StylistID, service)
	if err != nil {
		return nil, err
	}

	start, end, err := appt.DeriveSlot(in.Date, in.Time, duration, uc.loc)
	if err != nil {
		return nil, err
	}

	if start.Before(time.Now().In(uc.loc)) {
		return nil, httperr.ErrBusiness("in_the_past")
	}

	if err := uc.assertWithinSchedule(ctx, in.StylistID, start, end); err != nil {
		return nil, err
	}

	if err := uc.appointments.AssertNoTimeConflict(ctx, in.StylistID, start, end); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ServiceID:   in.ServiceID,
		StylistID:   in.StylistID,
		StartTime:   start,
		EndTime:     end,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		Status:      string(appt.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.appointments.Create(ctx, ap); err != nil {
		return nil, err
	}

	subject, body := confirmationEmail(ap, service.Name, stylist.FullName)
	uc.mailer.Send(ap.ClientEmail, subject, body)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// effectiveDuration honors the stylist's custom duration when the pair is
// offered; a stylist without an active offering of the service cannot be
// booked for it.
func (uc *Booking) effectiveDuration(
	ctx context.Context,
	stylistID uuid.UUID,
	service *models.Service,
) (int, error) {

	off, err := uc.offerings.FindByPair(ctx, stylistID, service.ID)
	if err != nil {
		return 0, err
	}
	if off == nil || !off.IsActive {
		return 0, httperr.ErrBusiness("service_not_offered")
	}
	if off.CustomDuration != nil {
		return *off.CustomDuration, nil
	}
	return service.DurationMinutes, nil
}

// assertWithinSchedule requires the slot to fall inside one of the stylist's
// recurring intervals for that weekday and outside any blocked period.
func (uc *Booking) assertWithinSchedule(
	ctx context.Context,
	stylistID uuid.UUID,
	start, end time.Time,
) error {

	rows, err := uc.schedules.FindForWeekday(ctx, stylistID, int(start.Weekday()))
	if err != nil {
		return err
	}

	within := false
	for _, row := range rows {
		rowStart, rowEnd, err := intervalOn(start, row.StartTime, row.EndTime)
		if err != nil {
			continue
		}
		if !start.Before(rowStart) && !end.After(rowEnd) {
			within = true
			break
		}
	}
	if !within {
		return httperr.ErrBusiness("outside_working_hours")
	}

	blocks, err := uc.unavail.ListInRange(ctx, stylistID, start, end)
	if err != nil {
		return err
	}
	if len(blocks) > 0 {
		return httperr.ErrBusiness("stylist_unavailable")
	}

	return nil
}

// intervalOn anchors an HH:MM pair to the day of anchor, in its location.
func intervalOn(anchor time.Time, startHM, endHM string) (time.Time, time.Time, error) {
	loc := anchor.Location()

	parse := func(hm string) (time.Time, error) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(
			anchor.Year(), anchor.Month(), anchor.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), nil
	}

	start, err := parse(startHM)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parse(endHM)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
