// Package validate holds the field validation rules shared by every form
// in the dashboard. Validation is pure and synchronous: a draft goes in,
// a field-to-message ErrorSet comes out, recomputed wholesale each pass.
package validate

// ErrorSet maps an offending field name to a human-readable message.
// Presence of any key means the draft is invalid.
type ErrorSet map[string]string

func NewErrorSet() ErrorSet {
	return make(ErrorSet)
}

// Add records a message for field unless the field already failed an
// earlier rule; the first failure per field wins, matching how the forms
// chain their checks.
func (e ErrorSet) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

func (e ErrorSet) Valid() bool {
	return len(e) == 0
}
