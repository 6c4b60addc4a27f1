package httperr

import "errors"

// IntegrityError marks a mutating query that unexpectedly matched no row.
// Unlike absence on a fetch, this is an assertion failure, not an outcome
// the caller is expected to handle.
type IntegrityError struct {
	Op string
}

func (e IntegrityError) Error() string {
	return "integrity failure: " + e.Op
}

func ErrIntegrity(op string) error {
	return IntegrityError{Op: op}
}

func IsIntegrity(err error) bool {
	var ie IntegrityError
	return errors.As(err, &ie)
}
