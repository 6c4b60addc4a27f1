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
	"github.com/luminasalon/salon-manager/internal/schema"
)

func bookingInput(serviceID, stylistID uuid.UUID, date, hm string) *schema.BookingInput {
	return &schema.BookingInput{
		ServiceID:   serviceID,
		StylistID:   stylistID,
		Date:        date,
		Time:        hm,
		ClientName:  "Maria Lopez",
		ClientEmail: "maria@example.com",
		ClientPhone: "+15551234567",
	}
}

func TestCreate_DerivesSlotFromServiceDuration(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	uc, m := newBookingUC(loc)

	serviceID := uuid.New()
	stylistID := uuid.New()
	start := time.Date(2030, 3, 11, 14, 0, 0, 0, loc)
	weekday := int(start.Weekday())

	m.stylists.On("GetByID", mock.Anything, stylistID).
		Return(&models.Stylist{ID: stylistID, FullName: "Ana Silva", IsActive: true}, nil)
	m.services.On("GetByID", mock.Anything, serviceID).
		Return(&models.Service{ID: serviceID, Name: "Haircut", DurationMinutes: 60, IsActive: true}, nil)
	m.offerings.On("FindByPair", mock.Anything, stylistID, serviceID).
		Return(&models.ServiceOffered{StylistID: stylistID, ServiceID: serviceID, IsActive: true}, nil)
	m.schedules.On("FindForWeekday", mock.Anything, stylistID, weekday).
		Return([]models.WorkSchedule{{StylistID: stylistID, Weekday: weekday, StartTime: "09:00", EndTime: "18:00"}}, nil)
	m.unavail.On("ListInRange", mock.Anything, stylistID, mock.Anything, mock.Anything).
		Return([]models.Unavailability{}, nil)
	m.appointments.On("AssertNoTimeConflict", mock.Anything, stylistID, start, start.Add(time.Hour)).
		Return(nil)
	m.appointments.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).
		Return(nil)
	m.mailer.On("Send", "maria@example.com", mock.Anything, mock.Anything).Return()

	ap, err := uc.Create(context.Background(), bookingInput(serviceID, stylistID, "2030-03-11", "14:00"))

	require.NoError(t, err)
	assert.True(t, ap.StartTime.Equal(start))
	assert.True(t, ap.EndTime.Equal(start.Add(time.Hour)))
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "Maria Lopez", ap.ClientName)

	m.appointments.AssertExpectations(t)
	m.mailer.AssertExpectations(t)
}

func TestCreate_HonorsCustomDuration(t *testing.T) {
	loc := time.UTC
	uc, m := newBookingUC(loc)

	serviceID := uuid.New()
	stylistID := uuid.New()
	custom := 90
	start := time.Date(2030, 3, 11, 10, 0, 0, 0, loc)
	weekday := int(start.Weekday())

	m.stylists.On("GetByID", mock.Anything, stylistID).
		Return(&models.Stylist{ID: stylistID, IsActive: true}, nil)
	m.services.On("GetByID", mock.Anything, serviceID).
		Return(&models.Service{ID: serviceID, Name: "Color", DurationMinutes: 60, IsActive: true}, nil)
	m.offerings.On("FindByPair", mock.Anything, stylistID, serviceID).
		Return(&models.ServiceOffered{IsActive: true, CustomDuration: &custom}, nil)
	m.schedules.On("FindForWeekday", mock.Anything, stylistID, weekday).
		Return([]models.WorkSchedule{{Weekday: weekday, StartTime: "09:00", EndTime: "18:00"}}, nil)
	m.unavail.On("ListInRange", mock.Anything, stylistID, mock.Anything, mock.Anything).
		Return([]models.Unavailability{}, nil)
	m.appointments.On("AssertNoTimeConflict", mock.Anything, stylistID, start, start.Add(90*time.Minute)).
		Return(nil)
	m.appointments.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return()

	ap, err := uc.Create(context.Background(), bookingInput(serviceID, stylistID, "2030-03-11", "10:00"))

	require.NoError(t, err)
	assert.True(t, ap.EndTime.Equal(start.Add(90*time.Minute)))
}

func TestCreate_Rejections(t *testing.T) {
	loc := time.UTC
	serviceID := uuid.New()
	stylistID := uuid.New()
	weekday := int(time.Date(2030, 3, 11, 0, 0, 0, 0, loc).Weekday())

	activeStylist := &models.Stylist{ID: stylistID, IsActive: true}
	activeService := &models.Service{ID: serviceID, Name: "Haircut", DurationMinutes: 60, IsActive: true}
	activeOffering := &models.ServiceOffered{IsActive: true}
	openDay := []models.WorkSchedule{{Weekday: weekday, StartTime: "09:00", EndTime: "18:00"}}

	tests := []struct {
		name     string
		date     string
		time     string
		setup    func(*bookingMocks)
		wantCode string
	}{
		{
			name: "inactive stylist",
			date: "2030-03-11", time: "14:00",
			setup: func(m *bookingMocks) {
				m.stylists.On("GetByID", mock.Anything, stylistID).
					Return(&models.Stylist{ID: stylistID, IsActive: false}, nil)
			},
			wantCode: "stylist_not_found",
		},
		{
			name: "inactive service",
			date: "2030-03-11", time: "14:00",
			setup: func(m *bookingMocks) {
				m.stylists.On("GetByID", mock.Anything, stylistID).Return(activeStylist, nil)
				m.services.On("GetByID", mock.Anything, serviceID).
					Return(&models.Service{ID: serviceID, IsActive: false}, nil)
			},
			wantCode: "service_not_found",
		},
		{
			name: "service not offered by stylist",
			date: "2030-03-11", time: "14:00",
			setup: func(m *bookingMocks) {
				m.stylists.On("GetByID", mock.Anything, stylistID).Return(activeStylist, nil)
				m.services.On("GetByID", mock.Anything, serviceID).Return(activeService, nil)
				m.offerings.On("FindByPair", mock.Anything, stylistID, serviceID).Return(nil, nil)
			},
			wantCode: "service_not_offered",
		},
		{
			name: "in the past",
			date: "2020-03-11", time: "14:00",
			setup: func(m *bookingMocks) {
				m.stylists.On("GetByID", mock.Anything, stylistID).Return(activeStylist, nil)
				m.services.On("GetByID", mock.Anything, serviceID).Return(activeService, nil)
				m.offerings.On("FindByPair", mock.Anything, stylistID, serviceID).Return(activeOffering, nil)
			},
			wantCode: "in_the_past",
		},
		{
			name: "outside working hours",
			date: "2030-03-11", time: "20:00",
			setup: func(m *bookingMocks) {
				m.stylists.On("GetByID", mock.Anything, stylistID).Return(activeStylist, nil)
				m.services.On("GetByID", mock.Anything, serviceID).Return(activeService, nil)
				m.offerings.On("FindByPair", mock.Anything, stylistID, serviceID).Return(activeOffering, nil)
				m.schedules.On("FindForWeekday", mock.Anything, stylistID, weekday).Return(openDay, nil)
			},
			wantCode: "outside_working_hours",
		},
		{
			name: "blocked period",
			date: "2030-03-11", time: "14:00",
			setup: func(m *bookingMocks) {
				m.stylists.On("GetByID", mock.Anything, stylistID).Return(activeStylist, nil)
				m.services.On("GetByID", mock.Anything, serviceID).Return(activeService, nil)
				m.offerings.On("FindByPair", mock.Anything, stylistID, serviceID).Return(activeOffering, nil)
				m.schedules.On("FindForWeekday", mock.Anything, stylistID, weekday).Return(openDay, nil)
				m.unavail.On("ListInRange", mock.Anything, stylistID, mock.Anything, mock.Anything).
					Return([]models.Unavailability{{StylistID: stylistID}}, nil)
			},
			wantCode: "stylist_unavailable",
		},
		{
			name: "slot already taken",
			date: "2030-03-11", time: "14:00",
			setup: func(m *bookingMocks) {
				m.stylists.On("GetByID", mock.Anything, stylistID).Return(activeStylist, nil)
				m.services.On("GetByID", mock.Anything, serviceID).Return(activeService, nil)
				m.offerings.On("FindByPair", mock.Anything, stylistID, serviceID).Return(activeOffering, nil)
				m.schedules.On("FindForWeekday", mock.Anything, stylistID, weekday).Return(openDay, nil)
				m.unavail.On("ListInRange", mock.Anything, stylistID, mock.Anything, mock.Anything).
					Return([]models.Unavailability{}, nil)
				m.appointments.On("AssertNoTimeConflict", mock.Anything, stylistID, mock.Anything, mock.Anything).
					Return(httperr.ErrBusiness("time_conflict"))
			},
			wantCode: "time_conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newBookingUC(loc)
			tt.setup(m)

			ap, err := uc.Create(context.Background(), bookingInput(serviceID, stylistID, tt.date, tt.time))

			assert.Nil(t, ap)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v, want code %s", err, tt.wantCode)
			m.appointments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			m.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
