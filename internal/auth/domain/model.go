package domain

import "time"

// User is an authenticated dashboard user.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	Provider string `json:"provider,omitempty"` // email, google, github, microsoft, okta
}

const (
	ProviderEmail     = "email"
	ProviderGoogle    = "google"
	ProviderGitHub    = "github"
	ProviderMicrosoft = "microsoft"
	ProviderOkta      = "okta"
)

// Session is the current user plus its expiry. A session counts as
// authenticated iff the user is present and the expiry is in the future.
type Session struct {
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s Session) Valid(now time.Time) bool {
	return s.User.ID != "" && now.Before(s.ExpiresAt)
}

// ResetToken is one issued password-reset token, checked only against
// local state.
type ResetToken struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Result is the tagged outcome every gateway operation resolves to. The
// gateway never returns a Go error for a business failure; failures ride
// in Error with Success=false.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SSOResult adds the identity-provider redirect for recognized company
// domains.
type SSOResult struct {
	Result
	RedirectURL string `json:"redirectUrl,omitempty"`
}

// VerifyResult reports whether a reset token is still usable.
type VerifyResult struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
}
