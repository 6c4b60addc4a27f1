package schema

// FormKey collects whole-form errors that belong to no single field.
const FormKey = "_form"

// FieldErrors maps a field name to its human-readable messages.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) AddForm(message string) {
	e.Add(FormKey, message)
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}
