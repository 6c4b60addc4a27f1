package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/luminasalon/salon-manager/internal/domain/schedule"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) ListByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.WorkSchedule, error) {
	var rows []models.WorkSchedule
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("weekday ASC, start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list work schedules: %w", err)
	}
	return rows, nil
}

func (r *ScheduleGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkSchedule, error) {
	var ws models.WorkSchedule
	err := r.db.WithContext(ctx).First(&ws, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get work schedule: %w", err)
	}
	return &ws, nil
}

// FindOverlapping relies on lexical HH:MM comparison, which matches the
// column format exactly.
func (r *ScheduleGormRepository) FindOverlapping(
	ctx context.Context,
	stylistID uuid.UUID,
	weekday int,
	start string,
	end string,
	excludeID uuid.UUID,
) (*models.WorkSchedule, error) {

	q := r.db.WithContext(ctx).
		Where(
			"stylist_id = ? AND weekday = ? AND start_time < ? AND end_time > ?",
			stylistID, weekday, end, start,
		)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}

	var ws models.WorkSchedule
	err := q.First(&ws).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find overlapping schedule: %w", err)
	}
	return &ws, nil
}

func (r *ScheduleGormRepository) FindForWeekday(
	ctx context.Context,
	stylistID uuid.UUID,
	weekday int,
) ([]models.WorkSchedule, error) {

	var rows []models.WorkSchedule
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND weekday = ?", stylistID, weekday).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find schedules for weekday: %w", err)
	}
	return rows, nil
}

func (r *ScheduleGormRepository) Create(ctx context.Context, ws *models.WorkSchedule) error {
	if err := r.db.WithContext(ctx).Create(ws).Error; err != nil {
		return fmt.Errorf("create work schedule: %w", err)
	}
	return nil
}

func (r *ScheduleGormRepository) Update(ctx context.Context, ws *models.WorkSchedule) error {
	res := r.db.WithContext(ctx).Model(&models.WorkSchedule{}).
		Where("id = ?", ws.ID).
		Select("weekday", "start_time", "end_time").
		Updates(map[string]any{
			"weekday":    ws.Weekday,
			"start_time": ws.StartTime,
			"end_time":   ws.EndTime,
		})
	if res.Error != nil {
		return fmt.Errorf("update work schedule: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrIntegrity("update work schedule matched no row")
	}
	return nil
}

func (r *ScheduleGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.WorkSchedule{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete work schedule: %w", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)

// --------------------------------------------------
// Unavailability
// --------------------------------------------------

type UnavailabilityGormRepository struct {
	db *gorm.DB
}

func NewUnavailabilityGormRepository(db *gorm.DB) *UnavailabilityGormRepository {
	return &UnavailabilityGormRepository{db: db}
}

func (r *UnavailabilityGormRepository) ListByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.Unavailability, error) {
	var rows []models.Unavailability
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("start_datetime DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list unavailability: %w", err)
	}
	return rows, nil
}

func (r *UnavailabilityGormRepository) ListInRange(
	ctx context.Context,
	stylistID uuid.UUID,
	start, end time.Time,
) ([]models.Unavailability, error) {

	var rows []models.Unavailability
	if err := r.db.WithContext(ctx).
		Where(
			"stylist_id = ? AND start_datetime < ? AND end_datetime > ?",
			stylistID, end, start,
		).
		Order("start_datetime ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list unavailability in range: %w", err)
	}
	return rows, nil
}

func (r *UnavailabilityGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Unavailability, error) {
	var u models.Unavailability
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get unavailability: %w", err)
	}
	return &u, nil
}

func (r *UnavailabilityGormRepository) Create(ctx context.Context, u *models.Unavailability) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create unavailability: %w", err)
	}
	return nil
}

func (r *UnavailabilityGormRepository) Update(ctx context.Context, u *models.Unavailability) error {
	res := r.db.WithContext(ctx).Model(&models.Unavailability{}).
		Where("id = ?", u.ID).
		Select("start_datetime", "end_datetime", "is_all_day", "reason", "type").
		Updates(map[string]any{
			"start_datetime": u.StartDatetime,
			"end_datetime":   u.EndDatetime,
			"is_all_day":     u.IsAllDay,
			"reason":         u.Reason,
			"type":           u.Type,
		})
	if res.Error != nil {
		return fmt.Errorf("update unavailability: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrIntegrity("update unavailability matched no row")
	}
	return nil
}

func (r *UnavailabilityGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Unavailability{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete unavailability: %w", err)
	}
	return nil
}

// Compile-time check
var _ domain.UnavailabilityRepository = (*UnavailabilityGormRepository)(nil)
