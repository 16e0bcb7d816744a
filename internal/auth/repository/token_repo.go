package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prodlens/prodlens-core/internal/auth/domain"
	"github.com/prodlens/prodlens-core/internal/storage"
)

const (
	tokensKey    = "reset_tokens"
	demoTokenKey = "demo_reset_token"
	demoEmailKey = "demo_reset_email"
)

// TokenRepository persists the reset-token table: token → {email, expiry}.
// The last issued token is mirrored under the demo keys so the demo UI
// can surface a reset link without sending email.
type TokenRepository struct {
	store storage.Store
}

func NewTokenRepository(st storage.Store) *TokenRepository {
	return &TokenRepository{store: st}
}

// Issue records a token and refreshes the demo mirror.
func (r *TokenRepository) Issue(token, email string, expiresAt time.Time) error {
	table, err := r.load()
	if err != nil {
		return err
	}
	table[token] = domain.ResetToken{Email: email, ExpiresAt: expiresAt}
	if err := r.save(table); err != nil {
		return err
	}
	if err := r.store.Set(demoTokenKey, []byte(token)); err != nil {
		return err
	}
	return r.store.Set(demoEmailKey, []byte(email))
}

// Get returns the record for a token if one exists.
func (r *TokenRepository) Get(token string) (domain.ResetToken, bool, error) {
	table, err := r.load()
	if err != nil {
		return domain.ResetToken{}, false, err
	}
	rec, ok := table[token]
	return rec, ok, nil
}

// Consume removes a token and clears the demo mirror.
func (r *TokenRepository) Consume(token string) error {
	table, err := r.load()
	if err != nil {
		return err
	}
	delete(table, token)
	if err := r.save(table); err != nil {
		return err
	}
	if err := r.store.Delete(demoTokenKey); err != nil {
		return err
	}
	return r.store.Delete(demoEmailKey)
}

// Sweep drops every token whose expiry has passed and reports how many
// went.
func (r *TokenRepository) Sweep(now time.Time) (int, error) {
	table, err := r.load()
	if err != nil {
		return 0, err
	}
	removed := 0
	for token, rec := range table {
		if now.After(rec.ExpiresAt) {
			delete(table, token)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, r.save(table)
}

func (r *TokenRepository) load() (map[string]domain.ResetToken, error) {
	data, err := r.store.Get(tokensKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return make(map[string]domain.ResetToken), nil
	}
	if err != nil {
		return nil, err
	}
	table := make(map[string]domain.ResetToken)
	if err := json.Unmarshal(data, &table); err != nil {
		// Corrupt token state is discardable; nobody can reset with it
		// either way.
		return make(map[string]domain.ResetToken), nil
	}
	return table, nil
}

func (r *TokenRepository) save(table map[string]domain.ResetToken) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal reset tokens: %w", err)
	}
	return r.store.Set(tokensKey, data)
}
