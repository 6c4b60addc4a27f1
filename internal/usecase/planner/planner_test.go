package planner

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

func newPlannerUC() (*Planner, *MockScheduleRepository, *MockUnavailabilityRepository) {
	schedules := new(MockScheduleRepository)
	unavail := new(MockUnavailabilityRepository)
	return New(schedules, unavail, nil, time.UTC), schedules, unavail
}

func TestAddInterval(t *testing.T) {
	uc, schedules, _ := newPlannerUC()

	stylistID := uuid.New()
	in := &schema.WorkScheduleInput{StylistID: stylistID, Weekday: 2, StartTime: "09:00", EndTime: "17:00"}

	schedules.On("FindOverlapping", mock.Anything, stylistID, 2, "09:00", "17:00", uuid.Nil).
		Return(nil, nil)
	schedules.On("Create", mock.Anything, mock.MatchedBy(func(ws *models.WorkSchedule) bool {
		return ws.StylistID == stylistID && ws.Weekday == 2 && ws.StartTime == "09:00"
	})).Return(nil)

	ws, err := uc.AddInterval(context.Background(), nil, in)

	require.NoError(t, err)
	assert.Equal(t, "17:00", ws.EndTime)
	schedules.AssertExpectations(t)
}

func TestAddInterval_Overlap(t *testing.T) {
	uc, schedules, _ := newPlannerUC()

	stylistID := uuid.New()
	in := &schema.WorkScheduleInput{StylistID: stylistID, Weekday: 2, StartTime: "10:00", EndTime: "14:00"}

	schedules.On("FindOverlapping", mock.Anything, stylistID, 2, "10:00", "14:00", uuid.Nil).
		Return(&models.WorkSchedule{ID: uuid.New()}, nil)

	ws, err := uc.AddInterval(context.Background(), nil, in)

	assert.Nil(t, ws)
	assert.True(t, httperr.IsBusiness(err, "schedule_conflict"))
	schedules.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateInterval_ExcludesSelfFromOverlapCheck(t *testing.T) {
	uc, schedules, _ := newPlannerUC()

	id := uuid.New()
	stylistID := uuid.New()
	in := &schema.WorkScheduleInput{StylistID: stylistID, Weekday: 3, StartTime: "09:00", EndTime: "12:00"}

	schedules.On("GetByID", mock.Anything, id).
		Return(&models.WorkSchedule{ID: id, StylistID: stylistID, Weekday: 2}, nil)
	schedules.On("FindOverlapping", mock.Anything, stylistID, 3, "09:00", "12:00", id).
		Return(nil, nil)
	schedules.On("Update", mock.Anything, mock.Anything).Return(nil)

	ws, err := uc.UpdateInterval(context.Background(), nil, id, in)

	require.NoError(t, err)
	assert.Equal(t, 3, ws.Weekday)
	schedules.AssertExpectations(t)
}

func TestUpdateInterval_NotFound(t *testing.T) {
	uc, schedules, _ := newPlannerUC()

	id := uuid.New()
	schedules.On("GetByID", mock.Anything, id).Return(nil, nil)

	ws, err := uc.UpdateInterval(context.Background(), nil, id, &schema.WorkScheduleInput{})

	assert.Nil(t, ws)
	assert.True(t, httperr.IsBusiness(err, "schedule_not_found"))
}

func TestAddUnavailability_ParsesInSalonTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	schedules := new(MockScheduleRepository)
	unavail := new(MockUnavailabilityRepository)
	uc := New(schedules, unavail, nil, loc)

	stylistID := uuid.New()
	unavail.On("Create", mock.Anything, mock.MatchedBy(func(u *models.Unavailability) bool {
		want := time.Date(2030, 7, 1, 9, 0, 0, 0, loc)
		return u.StylistID == stylistID && u.StartDatetime.Equal(want) && u.Type == "vacation"
	})).Return(nil)

	u, err := uc.AddUnavailability(context.Background(), nil, &schema.UnavailabilityInput{
		StylistID:     stylistID,
		StartDatetime: "2030-07-01 09:00",
		EndDatetime:   "2030-07-05 18:00",
		Type:          "vacation",
	})

	require.NoError(t, err)
	assert.True(t, u.EndDatetime.Equal(time.Date(2030, 7, 5, 18, 0, 0, 0, loc)))
	unavail.AssertExpectations(t)
}

func TestAddUnavailability_InvalidDatetime(t *testing.T) {
	uc, _, unavail := newPlannerUC()

	u, err := uc.AddUnavailability(context.Background(), nil, &schema.UnavailabilityInput{
		StylistID:     uuid.New(),
		StartDatetime: "not a datetime",
		EndDatetime:   "2030-07-05 18:00",
		Type:          "vacation",
	})

	assert.Nil(t, u)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	unavail.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
