package schema

// ServiceCategories are the admin-facing catalog groupings.
var ServiceCategories = []string{"hair", "color", "nails", "skincare", "massage", "other"}

type ServiceInput struct {
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Category        *string
	IsActive        bool
}

func ParseService(v Values) (*ServiceInput, FieldErrors) {
	errs := FieldErrors{}

	in := &ServiceInput{
		Name:            requireString(v, errs, "name", 100),
		Description:     optionalText(v, errs, "description", 500),
		DurationMinutes: intInRange(v, errs, "duration_minutes", 1, 480),
		Price:           price(v, errs, "price", 10000),
		Category:        optionalEnum(v, errs, "category", ServiceCategories...),
		IsActive:        checkbox(v, "is_active"),
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
