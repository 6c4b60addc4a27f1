package schema

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkSchedule(t *testing.T) {
	stylistID := uuid.New()

	in, errs := ParseWorkSchedule(Values{
		"stylist_id": stylistID.String(),
		"weekday":    "2",
		"start_time": "09:00",
		"end_time":   "17:30",
	})

	require.True(t, errs.Empty(), "unexpected errors: %v", errs)
	assert.Equal(t, stylistID, in.StylistID)
	assert.Equal(t, 2, in.Weekday)
	assert.Equal(t, "09:00", in.StartTime)
	assert.Equal(t, "17:30", in.EndTime)
}

func TestParseWorkSchedule_EndBeforeStart(t *testing.T) {
	in, errs := ParseWorkSchedule(Values{
		"stylist_id": uuid.NewString(),
		"weekday":    "2",
		"start_time": "17:00",
		"end_time":   "09:00",
	})

	assert.Nil(t, in)
	// the cross-field error belongs to the end field
	assert.Contains(t, errs, "end_time")
	assert.NotContains(t, errs, "start_time")
}

func TestParseWorkSchedule_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		values    Values
		wantField string
	}{
		{"missing stylist", Values{"weekday": "1", "start_time": "09:00", "end_time": "17:00"}, "stylist_id"},
		{"bad uuid", Values{"stylist_id": "nope", "weekday": "1", "start_time": "09:00", "end_time": "17:00"}, "stylist_id"},
		{"weekday out of range", Values{"stylist_id": uuid.NewString(), "weekday": "7", "start_time": "09:00", "end_time": "17:00"}, "weekday"},
		{"bad time", Values{"stylist_id": uuid.NewString(), "weekday": "1", "start_time": "9am", "end_time": "17:00"}, "start_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, errs := ParseWorkSchedule(tt.values)
			assert.Nil(t, in)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestParseUnavailability_EndBeforeStart(t *testing.T) {
	in, errs := ParseUnavailability(Values{
		"stylist_id":     uuid.NewString(),
		"start_datetime": "2026-09-10 14:00",
		"end_datetime":   "2026-09-10 12:00",
		"type":           "vacation",
	})

	assert.Nil(t, in)
	assert.Contains(t, errs, "end_datetime")
}
