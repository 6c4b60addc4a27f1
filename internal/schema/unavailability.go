package schema

import (
	"time"

	"github.com/google/uuid"
)

var UnavailabilityTypes = []string{"vacation", "sick", "break", "other"}

type UnavailabilityInput struct {
	StylistID     uuid.UUID
	StartDatetime string // YYYY-MM-DD HH:MM
	EndDatetime   string
	IsAllDay      bool
	Reason        *string
	Type          string
}

func ParseUnavailability(v Values) (*UnavailabilityInput, FieldErrors) {
	errs := FieldErrors{}

	in := &UnavailabilityInput{
		StylistID:     uuidField(v, errs, "stylist_id"),
		StartDatetime: dateTime(v, errs, "start_datetime"),
		EndDatetime:   dateTime(v, errs, "end_datetime"),
		IsAllDay:      checkbox(v, "is_all_day"),
		Reason:        optionalText(v, errs, "reason", 255),
		Type:          enum(v, errs, "type", UnavailabilityTypes...),
	}

	if in.StartDatetime != "" && in.EndDatetime != "" {
		start, _ := time.Parse("2006-01-02 15:04", in.StartDatetime)
		end, _ := time.Parse("2006-01-02 15:04", in.EndDatetime)
		if !end.After(start) {
			errs.Add("end_datetime", "must be after start")
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
