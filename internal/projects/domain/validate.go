package domain

import (
	"time"

	"github.com/prodlens/prodlens-core/internal/validate"
)

// ValidateDraft recomputes the full error set for a project draft. The
// past-date rule applies only when creating; an existing project may keep
// a due date that has since passed.
func ValidateDraft(d Draft, editing bool, now time.Time) validate.ErrorSet {
	errs := validate.NewErrorSet()
	validate.RequiredString(errs, "name", d.Name, "Project name", 3, 50)
	validate.RequiredString(errs, "description", d.Description, "Description", 10, 500)
	validate.DueDate(errs, "dueDate", d.DueDate, editing, now)
	return errs
}
