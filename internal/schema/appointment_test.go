package schema

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBooking(t *testing.T) {
	serviceID := uuid.New()
	stylistID := uuid.New()

	in, errs := ParseBooking(Values{
		"service_id":   serviceID.String(),
		"stylist_id":   stylistID.String(),
		"date":         "2026-09-15",
		"time":         "14:00",
		"client_name":  "Maria Lopez",
		"client_email": "Maria.Lopez@Example.COM",
		"client_phone": "+1 (555) 123-4567",
		"notes":        "",
	})

	require.True(t, errs.Empty(), "unexpected errors: %v", errs)
	assert.Equal(t, serviceID, in.ServiceID)
	assert.Equal(t, stylistID, in.StylistID)
	assert.Equal(t, "2026-09-15", in.Date)
	assert.Equal(t, "14:00", in.Time)
	assert.Equal(t, "maria.lopez@example.com", in.ClientEmail, "email is lowercased")
	assert.Equal(t, "+15551234567", in.ClientPhone, "phone is stripped of separators")
	assert.Nil(t, in.Notes)
}

func TestParseBooking_MissingEverything(t *testing.T) {
	in, errs := ParseBooking(Values{})

	assert.Nil(t, in)
	for _, field := range []string{"service_id", "stylist_id", "date", "time", "client_name", "client_email", "client_phone"} {
		assert.Contains(t, errs, field)
	}
}

func TestParseBooking_ContactValidation(t *testing.T) {
	base := Values{
		"service_id":  uuid.NewString(),
		"stylist_id":  uuid.NewString(),
		"date":        "2026-09-15",
		"time":        "14:00",
		"client_name": "Maria Lopez",
	}

	tests := []struct {
		name      string
		email     string
		phone     string
		wantField string
	}{
		{"bad email", "not-an-email", "+15551234567", "client_email"},
		{"bad phone", "maria@example.com", "12", "client_phone"},
		{"phone with letters", "maria@example.com", "555-CALL-NOW", "client_phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Values{}
			for k, val := range base {
				v[k] = val
			}
			v["client_email"] = tt.email
			v["client_phone"] = tt.phone

			in, errs := ParseBooking(v)
			assert.Nil(t, in)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestParseAppointmentStatus(t *testing.T) {
	in, errs := ParseAppointmentStatus(Values{"status": "Confirmed"})
	require.True(t, errs.Empty())
	assert.Equal(t, "confirmed", in.Status)

	in, errs = ParseAppointmentStatus(Values{"status": "archived"})
	assert.Nil(t, in)
	assert.Contains(t, errs, "status")
}
