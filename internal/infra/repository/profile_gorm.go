package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luminasalon/salon-manager/internal/domain/roster"
	"github.com/luminasalon/salon-manager/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileGormRepository) Create(ctx context.Context, p *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *ProfileGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Profile{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// Compile-time check
var _ roster.ProfileRepository = (*ProfileGormRepository)(nil)
