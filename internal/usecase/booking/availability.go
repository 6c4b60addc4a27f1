package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	appt "github.com/luminasalon/salon-manager/internal/domain/appointment"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
)

// Availability lists the free slots of a stylist for a service on a date:
// the recurring intervals of that weekday, stepped by the service duration,
// minus existing appointments and blocked periods.
func (uc *Booking) Availability(
	ctx context.Context,
	stylistID uuid.UUID,
	serviceID uuid.UUID,
	date time.Time,
) ([]appt.TimeSlot, error) {

	service, err := uc.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.IsActive {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	duration, err := uc.effectiveDuration(ctx, stylistID, service)
	if err != nil {
		return nil, err
	}
	slotDuration := time.Duration(duration) * time.Minute

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)
	dayEnd := day.Add(24 * time.Hour)

	rows, err := uc.schedules.FindForWeekday(ctx, stylistID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []appt.TimeSlot{}, nil
	}

	taken, err := uc.appointments.ListForDay(ctx, stylistID, day, dayEnd)
	if err != nil {
		return nil, err
	}

	blocks, err := uc.unavail.ListInRange(ctx, stylistID, day, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := []appt.TimeSlot{}
	for _, row := range rows {
		rowStart, rowEnd, err := intervalOn(day, row.StartTime, row.EndTime)
		if err != nil {
			continue
		}

		for cur := rowStart; !cur.Add(slotDuration).After(rowEnd); cur = cur.Add(slotDuration) {
			slotStart := cur
			slotEnd := cur.Add(slotDuration)

			if conflictsWithAny(slotStart, slotEnd, taken, blocks) {
				continue
			}

			slots = append(slots, appt.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}

func conflictsWithAny(
	start, end time.Time,
	taken []models.Appointment,
	blocks []models.Unavailability,
) bool {
	for _, ap := range taken {
		if appt.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true
		}
	}
	for _, b := range blocks {
		if appt.Overlaps(start, end, b.StartDatetime, b.EndDatetime) {
			return true
		}
	}
	return false
}
