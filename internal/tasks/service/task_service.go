package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/prodlens/prodlens-core/internal/collection"
	"github.com/prodlens/prodlens-core/internal/storage"
	"github.com/prodlens/prodlens-core/internal/tasks/domain"
	"github.com/prodlens/prodlens-core/internal/validate"
)

const storageKey = "favoriteTasks"

// TaskService owns the favorites task board: quick-add with validation
// and the todo → in-progress → completed transitions.
type TaskService struct {
	store  *collection.Store[domain.Task]
	logger *zap.Logger
}

func NewTaskService(st storage.Store, ids *collection.IDGenerator, logger *zap.Logger) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		store:  collection.NewStore(storageKey, []domain.Task{}, st, ids, logger),
		logger: logger,
	}
}

// ValidateName checks the quick-add input.
func (s *TaskService) ValidateName(name string) validate.ErrorSet {
	errs := validate.NewErrorSet()
	validate.RequiredString(errs, "task", name, "Task", 3, 100)
	return errs
}

// Add validates and appends a new task in the todo column.
func (s *TaskService) Add(name string) (domain.Task, validate.ErrorSet, error) {
	errs := s.ValidateName(name)
	if !errs.Valid() {
		return domain.Task{}, errs, nil
	}

	created, err := s.store.Create(domain.Task{
		Name:   strings.TrimSpace(name),
		Status: domain.StatusTodo,
	})
	if err != nil {
		return domain.Task{}, errs, err
	}

	s.logger.Info("task added", zap.Int64("id", created.ID))
	return created, errs, nil
}

// List returns all tasks in insertion order.
func (s *TaskService) List() ([]domain.Task, error) {
	return s.store.Load()
}

// ByStatus returns the tasks in one board column.
func (s *TaskService) ByStatus(status string) ([]domain.Task, error) {
	return s.store.List(func(t domain.Task) bool { return t.Status == status })
}

// SetStatus moves a task between columns.
func (s *TaskService) SetStatus(id int64, status string) (domain.Task, error) {
	if !domain.ValidStatus(status) {
		return domain.Task{}, domain.ErrInvalidStatus
	}
	return s.store.Update(id, func(t domain.Task) domain.Task {
		t.Status = status
		return t
	})
}

// Delete removes a task from the board.
func (s *TaskService) Delete(id int64) error {
	return s.store.Delete(id)
}
