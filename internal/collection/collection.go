// Package collection implements the ordered entity collection backing every
// dashboard screen: seeded from the snapshot store or a default seed,
// written back wholesale on each mutation, insertion order preserved.
package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/prodlens/prodlens-core/internal/storage"
)

var (
	// ErrNotFound signals an operation against an id that is not in the
	// collection. It is a no-op sentinel, never a crash.
	ErrNotFound = errors.New("collection: entity not found")
	// ErrCorruptState classifies a snapshot that could not be decoded.
	// Load recovers from it by reinstalling the seed.
	ErrCorruptState = errors.New("collection: corrupt persisted state")
)

// Entity is implemented by every persisted record. Stamp returns a copy of
// the entity with its identity assigned; identity is immutable afterwards.
type Entity[T any] interface {
	EntityID() int64
	Stamp(id int64, createdAt time.Time) T
}

// Store owns one entity kind. All mutations persist the entire collection
// synchronously before returning and are serialized by the store's own
// lock, so two mutations can never interleave mid-snapshot.
type Store[T Entity[T]] struct {
	key    string
	seed   []T
	store  storage.Store
	ids    *IDGenerator
	logger *zap.Logger

	mu     sync.Mutex
	items  []T
	loaded bool
}

func NewStore[T Entity[T]](key string, seed []T, st storage.Store, ids *IDGenerator, logger *zap.Logger) *Store[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store[T]{
		key:    key,
		seed:   seed,
		store:  st,
		ids:    ids,
		logger: logger,
	}
}

// Load returns the current collection, reading the persisted snapshot on
// first use. A missing snapshot installs the seed and persists it so the
// seed becomes the durable baseline; a corrupt snapshot is replaced by the
// seed and reported through the logger.
func (s *Store[T]) Load() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

// Create stamps a fresh identity onto item, appends it and persists.
func (s *Store[T]) Create(item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if err := s.ensureLoaded(); err != nil {
		return zero, err
	}

	created := item.Stamp(s.ids.Next(), time.Now())
	s.items = append(s.items, created)
	if err := s.persist(); err != nil {
		s.items = s.items[:len(s.items)-1]
		return zero, err
	}
	return created, nil
}

// Update applies fn to the entity with the given id and persists the
// result. The entity's identity survives whatever fn returns.
func (s *Store[T]) Update(id int64, fn func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if err := s.ensureLoaded(); err != nil {
		return zero, err
	}

	for i, item := range s.items {
		if item.EntityID() != id {
			continue
		}
		prev := s.items[i]
		s.items[i] = fn(item)
		if err := s.persist(); err != nil {
			s.items[i] = prev
			return zero, err
		}
		return s.items[i], nil
	}
	return zero, ErrNotFound
}

// Delete removes the entity with the given id and persists. A second
// delete of the same id reports ErrNotFound and leaves the collection
// untouched.
func (s *Store[T]) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	for i, item := range s.items {
		if item.EntityID() != id {
			continue
		}
		prev := s.items
		s.items = append(append([]T{}, s.items[:i]...), s.items[i+1:]...)
		if err := s.persist(); err != nil {
			s.items = prev
			return err
		}
		return nil
	}
	return ErrNotFound
}

// Get returns the entity with the given id.
func (s *Store[T]) Get(id int64) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if err := s.ensureLoaded(); err != nil {
		return zero, err
	}
	for _, item := range s.items {
		if item.EntityID() == id {
			return item, nil
		}
	}
	return zero, ErrNotFound
}

// List returns the collection in insertion order, optionally filtered.
// It is a pure read and never persists.
func (s *Store[T]) List(pred func(T) bool) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	if pred == nil {
		return s.snapshot(), nil
	}
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *Store[T]) ensureLoaded() error {
	if s.loaded {
		return nil
	}

	data, err := s.store.Get(s.key)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		s.items = append([]T{}, s.seed...)
		if err := s.persist(); err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("failed to load %q: %w", s.key, err)
	default:
		var items []T
		if uerr := json.Unmarshal(data, &items); uerr != nil {
			s.logger.Warn("snapshot corrupt, falling back to seed",
				zap.String("key", s.key),
				zap.Error(fmt.Errorf("%w: %v", ErrCorruptState, uerr)))
			s.items = append([]T{}, s.seed...)
			if err := s.persist(); err != nil {
				return err
			}
		} else {
			s.items = items
		}
	}

	s.loaded = true
	return nil
}

func (s *Store[T]) persist() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", s.key, err)
	}
	if err := s.store.Set(s.key, data); err != nil {
		return fmt.Errorf("failed to persist %q: %w", s.key, err)
	}
	return nil
}

func (s *Store[T]) snapshot() []T {
	return append([]T{}, s.items...)
}
