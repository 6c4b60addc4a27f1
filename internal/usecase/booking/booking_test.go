package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/luminasalon/salon-manager/internal/domain/catalog"
	"github.com/luminasalon/salon-manager/internal/models"
)

// MockAppointmentRepository is a mock implementation of appointment.Repository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockAppointmentRepository) AssertNoTimeConflict(ctx context.Context, stylistID uuid.UUID, start, end time.Time) error {
	args := m.Called(ctx, stylistID, start, end)
	return args.Error(0)
}

func (m *MockAppointmentRepository) ListForPeriod(ctx context.Context, stylistID uuid.UUID, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, stylistID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListForDay(ctx context.Context, stylistID uuid.UUID, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, stylistID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListStartingBetween(ctx context.Context, status string, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, status, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

// MockServiceRepository is a mock implementation of catalog.Repository.
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) List(ctx context.Context, f catalog.Filter) ([]models.Service, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByName(ctx context.Context, name string) (*models.Service, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, s *models.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *models.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStylistRepository is a mock implementation of roster.StylistRepository.
type MockStylistRepository struct {
	mock.Mock
}

func (m *MockStylistRepository) List(ctx context.Context, activeOnly bool) ([]models.Stylist, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Stylist), args.Error(1)
}

func (m *MockStylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Stylist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stylist), args.Error(1)
}

func (m *MockStylistRepository) FindByEmail(ctx context.Context, email string) (*models.Stylist, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stylist), args.Error(1)
}

func (m *MockStylistRepository) FindByPhone(ctx context.Context, phone string) (*models.Stylist, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stylist), args.Error(1)
}

func (m *MockStylistRepository) Create(ctx context.Context, s *models.Stylist) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStylistRepository) Update(ctx context.Context, s *models.Stylist) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOfferingRepository is a mock implementation of roster.OfferingRepository.
type MockOfferingRepository struct {
	mock.Mock
}

func (m *MockOfferingRepository) List(ctx context.Context) ([]models.ServiceOffered, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceOffered), args.Error(1)
}

func (m *MockOfferingRepository) ListByStylist(ctx context.Context, stylistID uuid.UUID, activeOnly bool) ([]models.ServiceOffered, error) {
	args := m.Called(ctx, stylistID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceOffered), args.Error(1)
}

func (m *MockOfferingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceOffered, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceOffered), args.Error(1)
}

func (m *MockOfferingRepository) FindByPair(ctx context.Context, stylistID, serviceID uuid.UUID) (*models.ServiceOffered, error) {
	args := m.Called(ctx, stylistID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceOffered), args.Error(1)
}

func (m *MockOfferingRepository) Create(ctx context.Context, o *models.ServiceOffered) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferingRepository) Update(ctx context.Context, o *models.ServiceOffered) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockScheduleRepository is a mock implementation of schedule.Repository.
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) ListByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.WorkSchedule, error) {
	args := m.Called(ctx, stylistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkSchedule), args.Error(1)
}

func (m *MockScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkSchedule), args.Error(1)
}

func (m *MockScheduleRepository) FindOverlapping(ctx context.Context, stylistID uuid.UUID, weekday int, start, end string, excludeID uuid.UUID) (*models.WorkSchedule, error) {
	args := m.Called(ctx, stylistID, weekday, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkSchedule), args.Error(1)
}

func (m *MockScheduleRepository) FindForWeekday(ctx context.Context, stylistID uuid.UUID, weekday int) ([]models.WorkSchedule, error) {
	args := m.Called(ctx, stylistID, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkSchedule), args.Error(1)
}

func (m *MockScheduleRepository) Create(ctx context.Context, ws *models.WorkSchedule) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, ws *models.WorkSchedule) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUnavailabilityRepository is a mock implementation of
// schedule.UnavailabilityRepository.
type MockUnavailabilityRepository struct {
	mock.Mock
}

func (m *MockUnavailabilityRepository) ListByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.Unavailability, error) {
	args := m.Called(ctx, stylistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Unavailability), args.Error(1)
}

func (m *MockUnavailabilityRepository) ListInRange(ctx context.Context, stylistID uuid.UUID, start, end time.Time) ([]models.Unavailability, error) {
	args := m.Called(ctx, stylistID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Unavailability), args.Error(1)
}

func (m *MockUnavailabilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Unavailability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Unavailability), args.Error(1)
}

func (m *MockUnavailabilityRepository) Create(ctx context.Context, u *models.Unavailability) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUnavailabilityRepository) Update(ctx context.Context, u *models.Unavailability) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUnavailabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMailer records outgoing mail.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, htmlBody string) {
	m.Called(to, subject, htmlBody)
}

type bookingMocks struct {
	appointments *MockAppointmentRepository
	services     *MockServiceRepository
	stylists     *MockStylistRepository
	offerings    *MockOfferingRepository
	schedules    *MockScheduleRepository
	unavail      *MockUnavailabilityRepository
	mailer       *MockMailer
}

func newBookingUC(loc *time.Location) (*Booking, *bookingMocks) {
	m := &bookingMocks{
		appointments: new(MockAppointmentRepository),
		services:     new(MockServiceRepository),
		stylists:     new(MockStylistRepository),
		offerings:    new(MockOfferingRepository),
		schedules:    new(MockScheduleRepository),
		unavail:      new(MockUnavailabilityRepository),
		mailer:       new(MockMailer),
	}

	uc := New(m.appointments, m.services, m.stylists, m.offerings, m.schedules, m.unavail, m.mailer, nil, loc)
	return uc, m
}
