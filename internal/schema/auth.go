package schema

type LoginInput struct {
	Email    string
	Password string
}

func ParseLogin(v Values) (*LoginInput, FieldErrors) {
	errs := FieldErrors{}

	in := &LoginInput{
		Email:    email(v, errs, "email"),
		Password: requireString(v, errs, "password", 72),
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
