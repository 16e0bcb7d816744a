package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/prodlens/prodlens-core/internal/storage"
)

// Object owns a single persisted document rather than an ordered
// collection. The settings screen persists this way: one key, one value,
// replaced wholesale on save.
type Object[T any] struct {
	key    string
	seed   T
	store  storage.Store
	logger *zap.Logger
	mu     sync.Mutex
}

func NewObject[T any](key string, seed T, st storage.Store, logger *zap.Logger) *Object[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Object[T]{key: key, seed: seed, store: st, logger: logger}
}

// Load returns the persisted document, or the seed when nothing has been
// saved yet. A corrupt document falls back to the seed.
func (o *Object[T]) Load() (T, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var zero T
	data, err := o.store.Get(o.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return o.seed, nil
	}
	if err != nil {
		return zero, fmt.Errorf("failed to load %q: %w", o.key, err)
	}

	var value T
	if uerr := json.Unmarshal(data, &value); uerr != nil {
		o.logger.Warn("document corrupt, falling back to seed",
			zap.String("key", o.key),
			zap.Error(fmt.Errorf("%w: %v", ErrCorruptState, uerr)))
		return o.seed, nil
	}
	return value, nil
}

// Save replaces the persisted document.
func (o *Object[T]) Save(value T) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", o.key, err)
	}
	if err := o.store.Set(o.key, data); err != nil {
		return fmt.Errorf("failed to persist %q: %w", o.key, err)
	}
	return nil
}

// Clear removes the persisted document entirely.
func (o *Object[T]) Clear() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.store.Delete(o.key)
}
