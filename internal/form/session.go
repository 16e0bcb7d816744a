// Package form models one interactive editing lifecycle: a draft, its
// current validation errors, and the create-vs-edit mode the screens
// switch on.
package form

import (
	"errors"

	"github.com/prodlens/prodlens-core/internal/validate"
)

// State names the stations of the lifecycle. A session moves
// Idle → Creating|Editing → Submitting → Idle; cancel returns to Idle
// from anywhere.
type State int

const (
	Idle State = iota
	Creating
	Editing
	Submitting
)

var (
	// ErrInvalidDraft is returned by Submit when validation fails; the
	// session stays open with its ErrorSet populated and nothing is
	// committed.
	ErrInvalidDraft = errors.New("form: draft is invalid")
	// ErrNotOpen is returned when Submit is called on an idle session.
	ErrNotOpen = errors.New("form: no form open")
)

// Session binds a draft of type D to one open form. Opening for edit
// snapshots the target entity's fields; later changes to that entity are
// not reflected into the draft, so simultaneous edits resolve
// last-write-wins.
type Session[D any] struct {
	state     State
	draft     D
	errors    validate.ErrorSet
	editingID int64
}

func NewSession[D any]() *Session[D] {
	return &Session[D]{errors: validate.NewErrorSet()}
}

func (s *Session[D]) State() State               { return s.state }
func (s *Session[D]) Draft() D                   { return s.draft }
func (s *Session[D]) Errors() validate.ErrorSet  { return s.errors }
func (s *Session[D]) EditingID() (int64, bool)   { return s.editingID, s.state == Editing }

// OpenCreate starts a new form from empty defaults.
func (s *Session[D]) OpenCreate(defaults D) {
	s.state = Creating
	s.draft = defaults
	s.errors = validate.NewErrorSet()
	s.editingID = 0
}

// OpenEdit starts a form over a copy of an existing entity's fields.
func (s *Session[D]) OpenEdit(id int64, snapshot D) {
	s.state = Editing
	s.draft = snapshot
	s.errors = validate.NewErrorSet()
	s.editingID = id
}

// SetDraft replaces the working draft while the form is open.
func (s *Session[D]) SetDraft(draft D) {
	if s.state == Creating || s.state == Editing {
		s.draft = draft
	}
}

// Submit validates the draft and, only if it passes, runs commit. An
// invalid draft rejects locally: the errors are retained, the state is
// unchanged and commit never runs. A failed commit also leaves the form
// open so the user can retry.
func (s *Session[D]) Submit(check func(D) validate.ErrorSet, commit func(D) error) error {
	if s.state != Creating && s.state != Editing {
		return ErrNotOpen
	}

	errs := check(s.draft)
	s.errors = errs
	if !errs.Valid() {
		return ErrInvalidDraft
	}

	prev := s.state
	s.state = Submitting
	if err := commit(s.draft); err != nil {
		s.state = prev
		return err
	}
	s.reset()
	return nil
}

// Cancel discards the draft and clears the errors without committing.
func (s *Session[D]) Cancel() {
	s.reset()
}

func (s *Session[D]) reset() {
	var zero D
	s.state = Idle
	s.draft = zero
	s.errors = validate.NewErrorSet()
	s.editingID = 0
}
