package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luminasalon/salon-manager/internal/domain/catalog"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) List(ctx context.Context, f catalog.Filter) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Model(&models.Service{})

	if f.Category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(f.Category))
	}
	if f.Active != nil {
		q = q.Where("is_active = ?", *f.Active)
	}
	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *ServiceGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var svc models.Service
	err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &svc, nil
}

func (r *ServiceGormRepository) FindByName(ctx context.Context, name string) (*models.Service, error) {
	var svc models.Service
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by name: %w", err)
	}
	return &svc, nil
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, s *models.Service) error {
	res := r.db.WithContext(ctx).Model(&models.Service{}).
		Where("id = ?", s.ID).
		Select("*").Omit("id", "created_at").
		Updates(s)
	if res.Error != nil {
		return fmt.Errorf("update service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrIntegrity("update service matched no row")
	}
	return nil
}

// Delete is a tolerated no-op when the row is already gone.
func (r *ServiceGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// Compile-time check
var _ catalog.Repository = (*ServiceGormRepository)(nil)
