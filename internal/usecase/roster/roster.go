package roster

import (
	"context"

	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/audit"
	domain "github.com/luminasalon/salon-manager/internal/domain/roster"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/identity"
	"github.com/luminasalon/salon-manager/internal/models"
	"github.com/luminasalon/salon-manager/internal/saga"
	"github.com/luminasalon/salon-manager/internal/schema"
)

// Roster manages stylists and the services they offer.
type Roster struct {
	stylists  domain.StylistRepository
	offerings domain.OfferingRepository
	profiles  domain.ProfileRepository
	identity  identity.Provider
	audit     *audit.Dispatcher
}

func New(
	stylists domain.StylistRepository,
	offerings domain.OfferingRepository,
	profiles domain.ProfileRepository,
	provider identity.Provider,
	audit *audit.Dispatcher,
) *Roster {
	return &Roster{
		stylists:  stylists,
		offerings: offerings,
		profiles:  profiles,
		identity:  provider,
		audit:     audit,
	}
}

// --------------------------------------------------
// Stylists
// --------------------------------------------------

func (uc *Roster) ListStylists(ctx context.Context, activeOnly bool) ([]models.Stylist, error) {
	return uc.stylists.List(ctx, activeOnly)
}

func (uc *Roster) GetStylist(ctx context.Context, id uuid.UUID) (*models.Stylist, error) {
	st, err := uc.stylists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, httperr.ErrBusiness("stylist_not_found")
	}
	return st, nil
}

// CreateStylist provisions the auth identity first, then the profile bridge
// row, then the stylist row. The three stores are independent, so the
// sequence runs as a saga: any failure unwinds what already ran.
func (uc *Roster) CreateStylist(
	ctx context.Context,
	actorID *uuid.UUID,
	in *schema.StylistInput,
) (*models.Stylist, error) {

	if err := uc.assertContactFree(ctx, in.Email, in.Phone, uuid.Nil); err != nil {
		return nil, err
	}

	var (
		user    *identity.User
		stylist *models.Stylist
	)

	sg := saga.New(
		saga.Step{
			Name: "provision identity",
			Run: func(ctx context.Context) error {
				u, err := uc.identity.CreateUser(ctx, in.Email, "")
				if err != nil {
					return err
				}
				user = u
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return uc.identity.DeleteUser(ctx, user.ID)
			},
		},
		saga.Step{
			Name: "create profile",
			Run: func(ctx context.Context) error {
				return uc.profiles.Create(ctx, &models.Profile{
					ID:   user.ID,
					Role: models.RoleStylist,
				})
			},
			Compensate: func(ctx context.Context) error {
				return uc.profiles.Delete(ctx, user.ID)
			},
		},
		saga.Step{
			Name: "create stylist row",
			Run: func(ctx context.Context) error {
				stylist = &models.Stylist{
					ProfileID:   user.ID,
					FullName:    in.FullName,
					Email:       in.Email,
					Phone:       in.Phone,
					Description: in.Description,
					IsActive:    in.IsActive,
				}
				return uc.stylists.Create(ctx, stylist)
			},
		},
	)

	if err := sg.Execute(ctx); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "stylist_created",
		Entity:   "stylist",
		EntityID: &stylist.ID,
	})

	return stylist, nil
}

func (uc *Roster) UpdateStylist(
	ctx context.Context,
	actorID *uuid.UUID,
	id uuid.UUID,
	in *schema.StylistInput,
) (*models.Stylist, error) {

	st, err := uc.GetStylist(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.assertContactFree(ctx, in.Email, in.Phone, id); err != nil {
		return nil, err
	}

	st.FullName = in.FullName
	st.Email = in.Email
	st.Phone = in.Phone
	st.Description = in.Description
	st.IsActive = in.IsActive

	if err := uc.stylists.Update(ctx, st); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "stylist_updated",
		Entity:   "stylist",
		EntityID: &st.ID,
	})

	return st, nil
}

func (uc *Roster) SetProfilePicture(
	ctx context.Context,
	actorID *uuid.UUID,
	id uuid.UUID,
	url string,
) (*models.Stylist, error) {

	st, err := uc.GetStylist(ctx, id)
	if err != nil {
		return nil, err
	}

	st.ProfilePicture = &url
	if err := uc.stylists.Update(ctx, st); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "stylist_picture_updated",
		Entity:   "stylist",
		EntityID: &st.ID,
	})

	return st, nil
}

func (uc *Roster) DeleteStylist(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	if err := uc.stylists.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "stylist_deleted",
		Entity:   "stylist",
		EntityID: &id,
	})

	return nil
}

// assertContactFree enumerates every violated contact field in one pass
// instead of failing on the first.
func (uc *Roster) assertContactFree(ctx context.Context, email, phone string, selfID uuid.UUID) error {
	var violations []httperr.FieldViolation

	byEmail, err := uc.stylists.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if byEmail != nil && byEmail.ID != selfID {
		violations = append(violations, httperr.FieldViolation{
			Field:   "email",
			Message: "already in use by another stylist",
		})
	}

	byPhone, err := uc.stylists.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if byPhone != nil && byPhone.ID != selfID {
		violations = append(violations, httperr.FieldViolation{
			Field:   "phone",
			Message: "already in use by another stylist",
		})
	}

	if len(violations) > 0 {
		return httperr.ErrUniqueness(violations...)
	}
	return nil
}

// --------------------------------------------------
// Offerings
// --------------------------------------------------

func (uc *Roster) ListOfferings(ctx context.Context) ([]models.ServiceOffered, error) {
	return uc.offerings.List(ctx)
}

func (uc *Roster) ListOfferingsByStylist(
	ctx context.Context,
	stylistID uuid.UUID,
	activeOnly bool,
) ([]models.ServiceOffered, error) {
	return uc.offerings.ListByStylist(ctx, stylistID, activeOnly)
}

func (uc *Roster) AddOffering(
	ctx context.Context,
	actorID *uuid.UUID,
	in *schema.OfferingInput,
) (*models.ServiceOffered, error) {

	if _, err := uc.GetStylist(ctx, in.StylistID); err != nil {
		return nil, err
	}

	existing, err := uc.offerings.FindByPair(ctx, in.StylistID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrUniqueness(httperr.FieldViolation{
			Field:   "service_id",
			Message: "this stylist already offers this service",
		})
	}

	off := &models.ServiceOffered{
		StylistID:      in.StylistID,
		ServiceID:      in.ServiceID,
		CustomPrice:    in.CustomPrice,
		CustomDuration: in.CustomDuration,
		IsActive:       in.IsActive,
	}

	if err := uc.offerings.Create(ctx, off); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "offering_created",
		Entity:   "service_offered",
		EntityID: &off.ID,
	})

	return off, nil
}

func (uc *Roster) UpdateOffering(
	ctx context.Context,
	actorID *uuid.UUID,
	id uuid.UUID,
	in *schema.OfferingUpdateInput,
) (*models.ServiceOffered, error) {

	off, err := uc.offerings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if off == nil {
		return nil, httperr.ErrBusiness("offering_not_found")
	}

	off.CustomPrice = in.CustomPrice
	off.CustomDuration = in.CustomDuration
	off.IsActive = in.IsActive

	if err := uc.offerings.Update(ctx, off); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "offering_updated",
		Entity:   "service_offered",
		EntityID: &off.ID,
	})

	return off, nil
}

func (uc *Roster) RemoveOffering(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	if err := uc.offerings.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "offering_deleted",
		Entity:   "service_offered",
		EntityID: &id,
	})

	return nil
}
