package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/luminasalon/salon-manager/internal/domain/appointment"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Stylist").
		First(&ap, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	res := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Select("status", "notes", "start_time", "end_time").
		Updates(map[string]any{
			"status":     ap.Status,
			"notes":      ap.Notes,
			"start_time": ap.StartTime,
			"end_time":   ap.EndTime,
		})
	if res.Error != nil {
		return fmt.Errorf("update appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrIntegrity("update appointment matched no row")
	}
	return nil
}

func (r *AppointmentGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	stylistID uuid.UUID,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"stylist_id = ? AND status IN ('pending', 'confirmed') AND start_time < ? AND end_time > ?",
			stylistID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check time conflict: %w", err)
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	stylistID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"stylist_id = ? AND start_time >= ? AND start_time < ?",
			stylistID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments for period: %w", err)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListForDay(
	ctx context.Context,
	stylistID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"stylist_id = ? AND status IN ('pending', 'confirmed') AND start_time >= ? AND start_time < ?",
			stylistID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments for day: %w", err)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListStartingBetween(
	ctx context.Context,
	status string,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Stylist").
		Where("status = ? AND start_time BETWEEN ? AND ?", status, from, to).
		Order("start_time ASC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments starting between: %w", err)
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
