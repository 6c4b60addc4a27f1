package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luminasalon/salon-manager/internal/domain/roster"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
)

type StylistGormRepository struct {
	db *gorm.DB
}

func NewStylistGormRepository(db *gorm.DB) *StylistGormRepository {
	return &StylistGormRepository{db: db}
}

func (r *StylistGormRepository) List(ctx context.Context, activeOnly bool) ([]models.Stylist, error) {
	q := r.db.WithContext(ctx).Model(&models.Stylist{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var stylists []models.Stylist
	if err := q.Order("full_name ASC").Find(&stylists).Error; err != nil {
		return nil, fmt.Errorf("list stylists: %w", err)
	}
	return stylists, nil
}

func (r *StylistGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Stylist, error) {
	var st models.Stylist
	err := r.db.WithContext(ctx).First(&st, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stylist: %w", err)
	}
	return &st, nil
}

func (r *StylistGormRepository) FindByEmail(ctx context.Context, email string) (*models.Stylist, error) {
	var st models.Stylist
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find stylist by email: %w", err)
	}
	return &st, nil
}

func (r *StylistGormRepository) FindByPhone(ctx context.Context, phone string) (*models.Stylist, error) {
	var st models.Stylist
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find stylist by phone: %w", err)
	}
	return &st, nil
}

func (r *StylistGormRepository) Create(ctx context.Context, s *models.Stylist) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create stylist: %w", err)
	}
	return nil
}

func (r *StylistGormRepository) Update(ctx context.Context, s *models.Stylist) error {
	res := r.db.WithContext(ctx).Model(&models.Stylist{}).
		Where("id = ?", s.ID).
		Select("*").Omit("id", "profile_id", "created_at").
		Updates(s)
	if res.Error != nil {
		return fmt.Errorf("update stylist: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrIntegrity("update stylist matched no row")
	}
	return nil
}

func (r *StylistGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Stylist{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete stylist: %w", err)
	}
	return nil
}

// Compile-time check
var _ roster.StylistRepository = (*StylistGormRepository)(nil)
