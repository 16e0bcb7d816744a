package service

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prodlens/prodlens-core/internal/collection"
	"github.com/prodlens/prodlens-core/internal/projects/domain"
	"github.com/prodlens/prodlens-core/internal/storage"
	"github.com/prodlens/prodlens-core/internal/validate"
)

const storageKey = "projects"

// ProjectService owns the project collection behind the My Projects
// screen: seeded board, search and status filtering, validated CRUD.
type ProjectService struct {
	store  *collection.Store[domain.Project]
	logger *zap.Logger
}

func NewProjectService(st storage.Store, ids *collection.IDGenerator, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		store:  collection.NewStore(storageKey, domain.Seed(), st, ids, logger),
		logger: logger,
	}
}

// List returns every project in insertion order.
func (s *ProjectService) List() ([]domain.Project, error) {
	return s.store.Load()
}

// Search filters by a case-insensitive term over name and description and
// by status; status "all" (or empty) matches everything.
func (s *ProjectService) Search(term, status string) ([]domain.Project, error) {
	term = strings.ToLower(term)
	return s.store.List(func(p domain.Project) bool {
		matchesTerm := term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
		matchesStatus := status == "" || status == "all" || p.Status == status
		return matchesTerm && matchesStatus
	})
}

// ValidateDraft exposes the draft rules for form sessions.
func (s *ProjectService) ValidateDraft(d domain.Draft, editing bool) validate.ErrorSet {
	return domain.ValidateDraft(d, editing, time.Now())
}

// Create validates the draft and appends a new project. New projects
// start at zero progress with an empty team; a draft without a status
// defaults to active.
func (s *ProjectService) Create(d domain.Draft) (domain.Project, validate.ErrorSet, error) {
	errs := domain.ValidateDraft(d, false, time.Now())
	if !errs.Valid() {
		return domain.Project{}, errs, nil
	}

	status := d.Status
	if status == "" {
		status = domain.StatusActive
	}

	created, err := s.store.Create(domain.Project{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Status:      status,
		Progress:    0,
		DueDate:     d.DueDate,
		Team:        []string{},
	})
	if err != nil {
		return domain.Project{}, errs, err
	}

	s.logger.Info("project created", zap.Int64("id", created.ID), zap.String("name", created.Name))
	return created, errs, nil
}

// Get returns one project by id.
func (s *ProjectService) Get(id int64) (domain.Project, error) {
	return s.store.Get(id)
}

// Update merges the provided fields into an existing project. A missing
// id reports collection.ErrNotFound and changes nothing.
func (s *ProjectService) Update(id int64, u domain.Update) (domain.Project, validate.ErrorSet, error) {
	if u.Name != nil || u.Description != nil || u.DueDate != nil {
		current, err := s.store.Get(id)
		if err != nil {
			return domain.Project{}, nil, err
		}
		merged := u.Apply(current)
		draft := domain.Draft{
			Name:        merged.Name,
			Description: merged.Description,
			Status:      merged.Status,
			DueDate:     merged.DueDate,
		}
		if errs := domain.ValidateDraft(draft, true, time.Now()); !errs.Valid() {
			return domain.Project{}, errs, nil
		}
	}

	if u.Name != nil {
		trimmed := strings.TrimSpace(*u.Name)
		u.Name = &trimmed
	}
	if u.Description != nil {
		trimmed := strings.TrimSpace(*u.Description)
		u.Description = &trimmed
	}

	updated, err := s.store.Update(id, u.Apply)
	if err != nil {
		return domain.Project{}, nil, err
	}

	s.logger.Info("project updated", zap.Int64("id", id))
	return updated, validate.NewErrorSet(), nil
}

// Delete removes a project. Deleting the same id twice reports
// collection.ErrNotFound on the second call.
func (s *ProjectService) Delete(id int64) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.logger.Info("project deleted", zap.Int64("id", id))
	return nil
}
