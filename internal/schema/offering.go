package schema

import "github.com/google/uuid"

type OfferingInput struct {
	StylistID      uuid.UUID
	ServiceID      uuid.UUID
	CustomPrice    *float64
	CustomDuration *int
	IsActive       bool
}

func ParseOffering(v Values) (*OfferingInput, FieldErrors) {
	errs := FieldErrors{}

	in := &OfferingInput{
		StylistID:      uuidField(v, errs, "stylist_id"),
		ServiceID:      uuidField(v, errs, "service_id"),
		CustomPrice:    optionalPrice(v, errs, "custom_price", 10000),
		CustomDuration: optionalIntInRange(v, errs, "custom_duration", 1, 480),
		IsActive:       checkbox(v, "is_active"),
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}

// OfferingUpdateInput covers the mutable fields; the (stylist, service) pair
// is fixed once created.
type OfferingUpdateInput struct {
	CustomPrice    *float64
	CustomDuration *int
	IsActive       bool
}

func ParseOfferingUpdate(v Values) (*OfferingUpdateInput, FieldErrors) {
	errs := FieldErrors{}

	in := &OfferingUpdateInput{
		CustomPrice:    optionalPrice(v, errs, "custom_price", 10000),
		CustomDuration: optionalIntInRange(v, errs, "custom_duration", 1, 480),
		IsActive:       checkbox(v, "is_active"),
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
