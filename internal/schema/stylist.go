package schema

type StylistInput struct {
	FullName    string
	Email       string
	Phone       string
	Description *string
	IsActive    bool
}

func ParseStylist(v Values) (*StylistInput, FieldErrors) {
	errs := FieldErrors{}

	in := &StylistInput{
		FullName:    requireString(v, errs, "full_name", 100),
		Email:       email(v, errs, "email"),
		Phone:       phone(v, errs, "phone"),
		Description: optionalText(v, errs, "description", 500),
		IsActive:    checkbox(v, "is_active"),
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
