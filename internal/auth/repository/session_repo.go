package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prodlens/prodlens-core/internal/auth/domain"
	"github.com/prodlens/prodlens-core/internal/storage"
)

const (
	sessionUserKey   = "auth_user"
	sessionExpiryKey = "auth_expiry"
)

// SessionRepository persists the process-wide session under two keys:
// the user document and a millisecond expiry stamp, so a reload restores
// the session until it lapses.
type SessionRepository struct {
	store storage.Store
}

func NewSessionRepository(st storage.Store) *SessionRepository {
	return &SessionRepository{store: st}
}

// Save replaces the persisted session.
func (r *SessionRepository) Save(session domain.Session) error {
	data, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}
	if err := r.store.Set(sessionUserKey, data); err != nil {
		return err
	}
	expiry := strconv.FormatInt(session.ExpiresAt.UnixMilli(), 10)
	return r.store.Set(sessionExpiryKey, []byte(expiry))
}

// Load returns the persisted session, expired or not; callers decide
// what an expired session means. Absent or unreadable state reports
// storage.ErrKeyNotFound.
func (r *SessionRepository) Load() (domain.Session, error) {
	userData, err := r.store.Get(sessionUserKey)
	if err != nil {
		return domain.Session{}, err
	}
	expiryData, err := r.store.Get(sessionExpiryKey)
	if err != nil {
		return domain.Session{}, err
	}

	var user domain.User
	if err := json.Unmarshal(userData, &user); err != nil {
		return domain.Session{}, storage.ErrKeyNotFound
	}
	millis, err := strconv.ParseInt(string(expiryData), 10, 64)
	if err != nil {
		return domain.Session{}, storage.ErrKeyNotFound
	}

	return domain.Session{User: user, ExpiresAt: time.UnixMilli(millis)}, nil
}

// Clear removes the persisted session.
func (r *SessionRepository) Clear() error {
	if err := r.store.Delete(sessionUserKey); err != nil {
		return err
	}
	return r.store.Delete(sessionExpiryKey)
}

// ClearIfExpired drops a lapsed session and reports whether it did.
func (r *SessionRepository) ClearIfExpired(now time.Time) (bool, error) {
	session, err := r.Load()
	if errors.Is(err, storage.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if session.Valid(now) {
		return false, nil
	}
	return true, r.Clear()
}
