package schema

import "github.com/google/uuid"

type WorkScheduleInput struct {
	StylistID uuid.UUID
	Weekday   int
	StartTime string
	EndTime   string
}

func ParseWorkSchedule(v Values) (*WorkScheduleInput, FieldErrors) {
	errs := FieldErrors{}

	in := &WorkScheduleInput{
		StylistID: uuidField(v, errs, "stylist_id"),
		Weekday:   intInRange(v, errs, "weekday", 0, 6),
		StartTime: timeHM(v, errs, "start_time"),
		EndTime:   timeHM(v, errs, "end_time"),
	}

	// cross-field refinement: the error belongs to the end field
	if in.StartTime != "" && in.EndTime != "" && in.EndTime <= in.StartTime {
		errs.Add("end_time", "must be after start time")
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
