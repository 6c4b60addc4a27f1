package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luminasalon/salon-manager/internal/domain/roster"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
)

type OfferingGormRepository struct {
	db *gorm.DB
}

func NewOfferingGormRepository(db *gorm.DB) *OfferingGormRepository {
	return &OfferingGormRepository{db: db}
}

func (r *OfferingGormRepository) List(ctx context.Context) ([]models.ServiceOffered, error) {
	var offerings []models.ServiceOffered
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Stylist").
		Order("created_at ASC").
		Find(&offerings).Error; err != nil {
		return nil, fmt.Errorf("list offerings: %w", err)
	}
	return offerings, nil
}

func (r *OfferingGormRepository) ListByStylist(
	ctx context.Context,
	stylistID uuid.UUID,
	activeOnly bool,
) ([]models.ServiceOffered, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Where("stylist_id = ?", stylistID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var offerings []models.ServiceOffered
	if err := q.Order("created_at ASC").Find(&offerings).Error; err != nil {
		return nil, fmt.Errorf("list offerings for stylist: %w", err)
	}
	return offerings, nil
}

func (r *OfferingGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceOffered, error) {
	var off models.ServiceOffered
	err := r.db.WithContext(ctx).
		Preload("Service").
		First(&off, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get offering: %w", err)
	}
	return &off, nil
}

func (r *OfferingGormRepository) FindByPair(
	ctx context.Context,
	stylistID, serviceID uuid.UUID,
) (*models.ServiceOffered, error) {

	var off models.ServiceOffered
	err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND service_id = ?", stylistID, serviceID).
		First(&off).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find offering by pair: %w", err)
	}
	return &off, nil
}

func (r *OfferingGormRepository) Create(ctx context.Context, o *models.ServiceOffered) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("create offering: %w", err)
	}
	return nil
}

func (r *OfferingGormRepository) Update(ctx context.Context, o *models.ServiceOffered) error {
	res := r.db.WithContext(ctx).Model(&models.ServiceOffered{}).
		Where("id = ?", o.ID).
		Select("custom_price", "custom_duration", "is_active").
		Updates(map[string]any{
			"custom_price":    o.CustomPrice,
			"custom_duration": o.CustomDuration,
			"is_active":       o.IsActive,
		})
	if res.Error != nil {
		return fmt.Errorf("update offering: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrIntegrity("update offering matched no row")
	}
	return nil
}

func (r *OfferingGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.ServiceOffered{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete offering: %w", err)
	}
	return nil
}

// Compile-time check
var _ roster.OfferingRepository = (*OfferingGormRepository)(nil)
