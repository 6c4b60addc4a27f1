package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	priceRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	phoneRe = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func requireString(v Values, e FieldErrors, field string, max int) string {
	s := v.Get(field)
	if s == "" {
		e.Add(field, "is required")
		return ""
	}
	if max > 0 && len(s) > max {
		e.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return s
}

// optionalText coerces the empty string to nil so optional columns store NULL
// instead of "".
func optionalText(v Values, e FieldErrors, field string, max int) *string {
	s := v.Get(field)
	if s == "" {
		return nil
	}
	if max > 0 && len(s) > max {
		e.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return &s
}

func intInRange(v Values, e FieldErrors, field string, min, max int) int {
	s := v.Get(field)
	if s == "" {
		e.Add(field, "is required")
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		e.Add(field, "must be a whole number")
		return 0
	}
	if n < min || n > max {
		e.Add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
	return n
}

func optionalIntInRange(v Values, e FieldErrors, field string, min, max int) *int {
	if v.Get(field) == "" {
		return nil
	}
	n := intInRange(v, e, field, min, max)
	return &n
}

func price(v Values, e FieldErrors, field string, max float64) float64 {
	s := v.Get(field)
	if s == "" {
		e.Add(field, "is required")
		return 0
	}
	if !priceRe.MatchString(s) {
		e.Add(field, "must be a non-negative amount with at most 2 decimals")
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		e.Add(field, "must be a number")
		return 0
	}
	if f > max {
		e.Add(field, fmt.Sprintf("must be at most %.0f", max))
	}
	return f
}

func optionalPrice(v Values, e FieldErrors, field string, max float64) *float64 {
	if v.Get(field) == "" {
		return nil
	}
	f := price(v, e, field, max)
	return &f
}

// checkbox treats browser checkbox values ("on") and common truthy strings as
// true; anything else, including absence, is false.
func checkbox(v Values, field string) bool {
	switch strings.ToLower(v.Get(field)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func uuidField(v Values, e FieldErrors, field string) uuid.UUID {
	s := v.Get(field)
	if s == "" {
		e.Add(field, "is required")
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		e.Add(field, "must be a valid identifier")
		return uuid.Nil
	}
	return id
}

func enum(v Values, e FieldErrors, field string, allowed ...string) string {
	s := strings.ToLower(v.Get(field))
	if s == "" {
		e.Add(field, "is required")
		return ""
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	e.Add(field, "must be one of: "+strings.Join(allowed, ", "))
	return ""
}

func optionalEnum(v Values, e FieldErrors, field string, allowed ...string) *string {
	if v.Get(field) == "" {
		return nil
	}
	s := enum(v, e, field, allowed...)
	if s == "" {
		return nil
	}
	return &s
}

func timeHM(v Values, e FieldErrors, field string) string {
	s := v.Get(field)
	if s == "" {
		e.Add(field, "is required")
		return ""
	}
	if _, err := time.Parse("15:04", s); err != nil {
		e.Add(field, "must be a time in HH:MM format")
		return ""
	}
	return s
}

func dateYMD(v Values, e FieldErrors, field string) string {
	s := v.Get(field)
	if s == "" {
		e.Add(field, "is required")
		return ""
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		e.Add(field, "must be a date in YYYY-MM-DD format")
		return ""
	}
	return s
}

func dateTime(v Values, e FieldErrors, field string) string {
	s := v.Get(field)
	if s == "" {
		e.Add(field, "is required")
		return ""
	}
	if _, err := time.Parse("2006-01-02 15:04", s); err != nil {
		e.Add(field, "must be a datetime in YYYY-MM-DD HH:MM format")
		return ""
	}
	return s
}

func email(v Values, e FieldErrors, field string) string {
	s := strings.ToLower(requireString(v, e, field, 100))
	if s != "" && !emailRe.MatchString(s) {
		e.Add(field, "must be a valid email address")
	}
	return s
}

func phone(v Values, e FieldErrors, field string) string {
	s := requireString(v, e, field, 20)
	if s == "" {
		return ""
	}
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
	if !phoneRe.MatchString(cleaned) {
		e.Add(field, "must be a valid phone number")
		return ""
	}
	return cleaned
}
