package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/prodlens/prodlens-core/internal/collection"
	"github.com/prodlens/prodlens-core/internal/storage"
	"github.com/prodlens/prodlens-core/internal/teams/domain"
	"github.com/prodlens/prodlens-core/internal/validate"
)

const storageKey = "teamMembers"

// TeamService owns the team roster.
type TeamService struct {
	store  *collection.Store[domain.TeamMember]
	logger *zap.Logger
}

func NewTeamService(st storage.Store, ids *collection.IDGenerator, logger *zap.Logger) *TeamService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeamService{
		store:  collection.NewStore(storageKey, domain.Seed(), st, ids, logger),
		logger: logger,
	}
}

// ValidateDraft recomputes the member form errors.
func (s *TeamService) ValidateDraft(d domain.Draft) validate.ErrorSet {
	errs := validate.NewErrorSet()
	validate.RequiredString(errs, "name", d.Name, "Name", 2, 50)
	validate.RequiredString(errs, "role", d.Role, "Role", 2, 50)
	return errs
}

// List returns the roster in insertion order.
func (s *TeamService) List() ([]domain.TeamMember, error) {
	return s.store.Load()
}

// Add validates the draft and appends a new member.
func (s *TeamService) Add(d domain.Draft) (domain.TeamMember, validate.ErrorSet, error) {
	errs := s.ValidateDraft(d)
	if !errs.Valid() {
		return domain.TeamMember{}, errs, nil
	}

	skills := d.Skills
	if skills == nil {
		skills = []string{}
	}

	created, err := s.store.Create(domain.TeamMember{
		Name:   strings.TrimSpace(d.Name),
		Role:   strings.TrimSpace(d.Role),
		Skills: skills,
	})
	if err != nil {
		return domain.TeamMember{}, errs, err
	}

	s.logger.Info("team member added", zap.Int64("id", created.ID), zap.String("role", created.Role))
	return created, errs, nil
}

// Update merges the provided fields into an existing member.
func (s *TeamService) Update(id int64, u domain.Update) (domain.TeamMember, validate.ErrorSet, error) {
	if u.Name != nil || u.Role != nil {
		current, err := s.store.Get(id)
		if err != nil {
			return domain.TeamMember{}, nil, err
		}
		merged := u.Apply(current)
		if errs := s.ValidateDraft(domain.Draft{Name: merged.Name, Role: merged.Role, Skills: merged.Skills}); !errs.Valid() {
			return domain.TeamMember{}, errs, nil
		}
	}

	updated, err := s.store.Update(id, u.Apply)
	if err != nil {
		return domain.TeamMember{}, nil, err
	}
	return updated, validate.NewErrorSet(), nil
}

// Remove deletes a member from the roster. Project team lists are not
// touched; collections do not cascade into each other.
func (s *TeamService) Remove(id int64) error {
	return s.store.Delete(id)
}
