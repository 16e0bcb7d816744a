package repository

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/prodlens/prodlens-core/internal/auth/domain"
)

// UserRepository is the simulated user table. It lives in memory for the
// lifetime of the process, is injected rather than global so tests can
// isolate instances, and stores only bcrypt hashes.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]userRecord // keyed by lowercase email
}

type userRecord struct {
	hash []byte
	user domain.User
}

// NewUserRepository seeds the table with the demo account.
func NewUserRepository() (*UserRepository, error) {
	r := &UserRepository{users: make(map[string]userRecord)}
	err := r.Create(domain.User{
		ID:       "1",
		Name:     "Demo User",
		Email:    "demo@prodlens.com",
		Provider: domain.ProviderEmail,
	}, "Demo1234")
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Find returns the user for an email, case-insensitively.
func (r *UserRepository) Find(email string) (domain.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.users[strings.ToLower(email)]
	return rec.user, ok
}

// Authenticate compares a candidate password against the stored hash.
func (r *UserRepository) Authenticate(email, password string) (domain.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.users[strings.ToLower(email)]
	if !ok {
		return domain.User{}, false
	}
	if bcrypt.CompareHashAndPassword(rec.hash, []byte(password)) != nil {
		return domain.User{}, false
	}
	return rec.user, true
}

// Create adds a new user with a hashed password.
func (r *UserRepository) Create(user domain.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := r.users[key]; exists {
		return domain.ErrUserExists
	}
	r.users[key] = userRecord{hash: hash, user: user}
	return nil
}

// SetPassword replaces a user's password hash. Missing users are a no-op
// with a sentinel, matching the reset flow's tolerance for unknown emails.
func (r *UserRepository) SetPassword(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(email)
	rec, ok := r.users[key]
	if !ok {
		return domain.ErrUserNotFound
	}
	rec.hash = hash
	r.users[key] = rec
	return nil
}
