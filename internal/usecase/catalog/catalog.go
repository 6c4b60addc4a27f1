package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/audit"
	domain "github.com/luminasalon/salon-manager/internal/domain/catalog"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
	"github.com/luminasalon/salon-manager/internal/schema"
)

// Catalog manages the salon's service catalog.
type Catalog struct {
	services domain.Repository
	audit    *audit.Dispatcher
}

func New(services domain.Repository, audit *audit.Dispatcher) *Catalog {
	return &Catalog{
		services: services,
		audit:    audit,
	}
}

func (uc *Catalog) List(ctx context.Context, f domain.Filter) ([]models.Service, error) {
	return uc.services.List(ctx, f)
}

func (uc *Catalog) Get(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	svc, err := uc.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return svc, nil
}

func (uc *Catalog) Create(
	ctx context.Context,
	actorID *uuid.UUID,
	in *schema.ServiceInput,
) (*models.Service, error) {

	if err := uc.assertNameFree(ctx, in.Name, uuid.Nil); err != nil {
		return nil, err
	}

	svc := &models.Service{
		Name:            in.Name,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		Category:        in.Category,
		IsActive:        in.IsActive,
	}

	if err := uc.services.Create(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}

func (uc *Catalog) Update(
	ctx context.Context,
	actorID *uuid.UUID,
	id uuid.UUID,
	in *schema.ServiceInput,
) (*models.Service, error) {

	svc, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.assertNameFree(ctx, in.Name, id); err != nil {
		return nil, err
	}

	svc.Name = in.Name
	svc.Description = in.Description
	svc.DurationMinutes = in.DurationMinutes
	svc.Price = in.Price
	svc.Category = in.Category
	svc.IsActive = in.IsActive

	if err := uc.services.Update(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}

// Delete tolerates an already-deleted id.
func (uc *Catalog) Delete(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	if err := uc.services.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	return nil
}

func (uc *Catalog) assertNameFree(ctx context.Context, name string, selfID uuid.UUID) error {
	existing, err := uc.services.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return httperr.ErrUniqueness(httperr.FieldViolation{
			Field:   "name",
			Message: "a service with this name already exists",
		})
	}
	return nil
}
