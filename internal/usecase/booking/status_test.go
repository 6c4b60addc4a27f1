package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
)

func TestConfirm(t *testing.T) {
	uc, m := newBookingUC(time.UTC)

	id := uuid.New()
	actorID := uuid.New()

	m.appointments.On("GetByID", mock.Anything, id).
		Return(&models.Appointment{ID: id, Status: "pending"}, nil)
	m.appointments.On("Update", mock.Anything, mock.MatchedBy(func(ap *models.Appointment) bool {
		return ap.Status == "confirmed"
	})).Return(nil)

	ap, err := uc.Confirm(context.Background(), &actorID, id)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)
	m.appointments.AssertExpectations(t)
}

func TestConfirm_AlreadyCancelled(t *testing.T) {
	uc, m := newBookingUC(time.UTC)

	id := uuid.New()
	m.appointments.On("GetByID", mock.Anything, id).
		Return(&models.Appointment{ID: id, Status: "cancelled"}, nil)

	ap, err := uc.Confirm(context.Background(), nil, id)

	assert.Nil(t, ap)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	m.appointments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancel_Confirmed(t *testing.T) {
	uc, m := newBookingUC(time.UTC)

	id := uuid.New()
	m.appointments.On("GetByID", mock.Anything, id).
		Return(&models.Appointment{ID: id, Status: "confirmed"}, nil)
	m.appointments.On("Update", mock.Anything, mock.Anything).Return(nil)

	ap, err := uc.Cancel(context.Background(), nil, id)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
}

func TestComplete_RequiresConfirmed(t *testing.T) {
	uc, m := newBookingUC(time.UTC)

	id := uuid.New()
	m.appointments.On("GetByID", mock.Anything, id).
		Return(&models.Appointment{ID: id, Status: "pending"}, nil)

	ap, err := uc.Complete(context.Background(), nil, id)

	assert.Nil(t, ap)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestTransition_NotFound(t *testing.T) {
	uc, m := newBookingUC(time.UTC)

	id := uuid.New()
	m.appointments.On("GetByID", mock.Anything, id).Return(nil, nil)

	ap, err := uc.Confirm(context.Background(), nil, id)

	assert.Nil(t, ap)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestListForDay_UsesSalonDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	uc, m := newBookingUC(loc)

	stylistID := uuid.New()
	dayStart := time.Date(2030, 3, 11, 0, 0, 0, 0, loc)

	m.appointments.On("ListForPeriod", mock.Anything, stylistID, dayStart, dayStart.Add(24*time.Hour)).
		Return([]models.Appointment{{StylistID: stylistID}}, nil)

	appts, err := uc.ListForDay(context.Background(), stylistID, time.Date(2030, 3, 11, 15, 30, 0, 0, loc))

	require.NoError(t, err)
	assert.Len(t, appts, 1)
	m.appointments.AssertExpectations(t)
}
