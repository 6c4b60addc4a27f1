package httperr

import "errors"

// FieldViolation names one field-level rule break, e.g. a natural-key
// collision on "email".
type FieldViolation struct {
	Field   string
	Message string
}

type BusinessError struct {
	Code   string
	Fields []FieldViolation
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrUniqueness builds a duplicate-key business error carrying every violated
// field, so the caller reports them all in one pass instead of failing on the
// first.
func ErrUniqueness(fields ...FieldViolation) error {
	return BusinessError{Code: "duplicate", Fields: fields}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// FieldMap converts the violations to the response error-map shape.
// Violations without a field name go under "_form".
func (e BusinessError) FieldMap() map[string][]string {
	if len(e.Fields) == 0 {
		return nil
	}
	m := make(map[string][]string, len(e.Fields))
	for _, f := range e.Fields {
		key := f.Field
		if key == "" {
			key = "_form"
		}
		m[key] = append(m[key], f.Message)
	}
	return m
}
