package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodlens/prodlens-core/config"
	"github.com/prodlens/prodlens-core/internal/auth/domain"
	"github.com/prodlens/prodlens-core/internal/auth/repository"
	"github.com/prodlens/prodlens-core/internal/collection"
	"github.com/prodlens/prodlens-core/internal/storage"
)

type gatewayFixture struct {
	gateway  *Gateway
	store    storage.Store
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	tokens   *repository.TokenRepository
}

func newGatewayFixture(t *testing.T, cfg config.AuthConfig) gatewayFixture {
	t.Helper()

	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	users, err := repository.NewUserRepository()
	require.NoError(t, err)
	sessions := repository.NewSessionRepository(fs)
	tokens := repository.NewTokenRepository(fs)

	// DelayScale 0 strips the artificial latency so tests run instantly.
	cfg.DelayScale = 0
	return gatewayFixture{
		gateway:  NewGateway(users, sessions, tokens, collection.NewIDGenerator(), cfg, nil),
		store:    fs,
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}

func TestGateway_Login(t *testing.T) {
	t.Run("demo credentials", func(t *testing.T) {
		f := newGatewayFixture(t, config.AuthConfig{})

		res := f.gateway.Login("Demo@ProdLens.com", "Demo1234", false)
		assert.True(t, res.Success)
		assert.Empty(t, res.Error)

		session, err := f.sessions.Load()
		require.NoError(t, err)
		assert.Equal(t, "demo@prodlens.com", session.User.Email)
		assert.Equal(t, domain.ProviderEmail, session.User.Provider)
	})

	t.Run("session lasts about a day", func(t *testing.T) {
		f := newGatewayFixture(t, config.AuthConfig{})

		require.True(t, f.gateway.Login("demo@prodlens.com", "Demo1234", false).Success)

		session, err := f.sessions.Load()
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
	})

	t.Run("remember me extends to thirty days", func(t *testing.T) {
		f := newGatewayFixture(t, config.AuthConfig{})

		require.True(t, f.gateway.Login("demo@prodlens.com", "Demo1234", true).Success)

		session, err := f.sessions.Load()
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), session.ExpiresAt, time.Minute)
	})

	t.Run("unknown email with long password signs in a demo user", func(t *testing.T) {
		f := newGatewayFixture(t, config.AuthConfig{})

		res := f.gateway.Login("visitor@example.com", "whatever-goes", false)
		assert.True(t, res.Success)

		session, err := f.sessions.Load()
		require.NoError(t, err)
		assert.Equal(t, "visitor@example.com", session.User.Email)
		assert.Equal(t, "visitor", session.User.Name)
	})

	t.Run("short password fails closed", func(t *testing.T) {
		f := newGatewayFixture(t, config.AuthConfig{})

		res := f.gateway.Login("visitor@example.com", "short", false)
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid email or password", res.Error)

		_, err := f.sessions.Load()
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("wrong password still falls back when long enough", func(t *testing.T) {
		f := newGatewayFixture(t, config.AuthConfig{})

		// The demo fallback accepts any 8+ character password even for a
		// known account with a different stored password.
		res := f.gateway.Login("demo@prodlens.com", "WrongPass1", false)
		assert.True(t, res.Success)
	})
}

func TestGateway_Signup(t *testing.T) {
	f := newGatewayFixture(t, config.AuthConfig{})

	t.Run("new account signs in immediately", func(t *testing.T) {
		res := f.gateway.Signup("Ada Lovelace", "ada@example.com", "Analytical1")
		assert.True(t, res.Success)

		session, err := f.sessions.Load()
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", session.User.Name)
		assert.Equal(t, "ada@example.com", session.User.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		res := f.gateway.Signup("Another Demo", "DEMO@prodlens.com", "Demo5678")
		assert.False(t, res.Success)
		assert.Equal(t, "An account with this email already exists", res.Error)
	})

	t.Run("registered credentials survive for login", func(t *testing.T) {
		require.NoError(t, f.gateway.Logout())
		res := f.gateway.Login("ada@example.com", "Analytical1", false)
		assert.True(t, res.Success)
	})
}

func TestGateway_SocialLogin(t *testing.T) {
	f := newGatewayFixture(t, config.AuthConfig{})

	res := f.gateway.SocialLogin("google")
	assert.True(t, res.Success)

	session, err := f.sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, "Google User", session.User.Name)
	assert.Equal(t, "user@google.com", session.User.Email)
	assert.Equal(t, "google", session.User.Provider)
}

func TestGateway_SSOLogin(t *testing.T) {
	t.Run("recognized domain redirects", func(t *testing.T) {
		f := newGatewayFixture(t, config.AuthConfig{})

		res := f.gateway.SSOLogin("Sales.Company.com")
		assert.True(t, res.Success)
		assert.Equal(t, "https://sso.sales.company.com/auth?client=prodlens", res.RedirectURL)

		// Discovery redirects; no local session yet.
		_, err := f.sessions.Load()
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("unrecognized domain signs in a demo SSO user", func(t *testing.T) {
		f := newGatewayFixture(t, config.AuthConfig{})

		res := f.gateway.SSOLogin("startup.dev")
		assert.True(t, res.Success)
		assert.Empty(t, res.RedirectURL)

		session, err := f.sessions.Load()
		require.NoError(t, err)
		assert.Equal(t, domain.ProviderOkta, session.User.Provider)
		assert.Equal(t, "user@startup.dev", session.User.Email)
	})
}

func TestGateway_PasswordResetFlow(t *testing.T) {
	f := newGatewayFixture(t, config.AuthConfig{})

	res := f.gateway.ForgotPassword("Demo@ProdLens.com")
	require.True(t, res.Success)

	// The demo mirror carries the last issued token.
	tokenBytes, err := f.store.Get("demo_reset_token")
	require.NoError(t, err)
	token := string(tokenBytes)
	require.NotEmpty(t, token)

	t.Run("verify", func(t *testing.T) {
		v := f.gateway.VerifyResetToken(token)
		assert.True(t, v.Valid)
		assert.Equal(t, "demo@prodlens.com", v.Email)
	})

	t.Run("reset replaces the password", func(t *testing.T) {
		res := f.gateway.ResetPassword(token, "Fresh1234")
		assert.True(t, res.Success)

		assert.False(t, f.gateway.Login("demo@prodlens.com", "Demo123", false).Success)
		assert.True(t, f.gateway.Login("demo@prodlens.com", "Fresh1234", false).Success)
	})

	t.Run("token is single use", func(t *testing.T) {
		v := f.gateway.VerifyResetToken(token)
		assert.False(t, v.Valid)

		res := f.gateway.ResetPassword(token, "Another123")
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid or expired reset link", res.Error)
	})
}

func TestGateway_VerifyResetToken(t *testing.T) {
	f := newGatewayFixture(t, config.AuthConfig{})

	t.Run("unknown token", func(t *testing.T) {
		v := f.gateway.VerifyResetToken("nope")
		assert.False(t, v.Valid)
		assert.Empty(t, v.Email)
	})

	t.Run("expired token", func(t *testing.T) {
		require.NoError(t, f.tokens.Issue("stale", "demo@prodlens.com", time.Now().Add(-time.Minute)))

		v := f.gateway.VerifyResetToken("stale")
		assert.False(t, v.Valid)
	})
}

func TestGateway_ForgotPasswordRateLimit(t *testing.T) {
	f := newGatewayFixture(t, config.AuthConfig{ResetLinksPerHr: 2})

	require.True(t, f.gateway.ForgotPassword("a@example.com").Success)
	require.True(t, f.gateway.ForgotPassword("b@example.com").Success)

	res := f.gateway.ForgotPassword("c@example.com")
	assert.False(t, res.Success)
	assert.Equal(t, "Too many reset requests, please try again later", res.Error)
}

func TestGateway_CurrentSession(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		f := newGatewayFixture(t, config.AuthConfig{})

		session, err := f.gateway.CurrentSession()
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("restores a live session", func(t *testing.T) {
		f := newGatewayFixture(t, config.AuthConfig{})
		require.True(t, f.gateway.Login("demo@prodlens.com", "Demo1234", false).Success)

		session, err := f.gateway.CurrentSession()
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "demo@prodlens.com", session.User.Email)
	})

	t.Run("clears a lapsed session", func(t *testing.T) {
		f := newGatewayFixture(t, config.AuthConfig{})
		require.NoError(t, f.sessions.Save(domain.Session{
			User:      domain.User{ID: "1", Email: "demo@prodlens.com"},
			ExpiresAt: time.Now().Add(-time.Minute),
		}))

		session, err := f.gateway.CurrentSession()
		require.NoError(t, err)
		assert.Nil(t, session)

		_, err = f.sessions.Load()
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})
}

func TestGateway_Logout(t *testing.T) {
	f := newGatewayFixture(t, config.AuthConfig{})
	require.True(t, f.gateway.Login("demo@prodlens.com", "Demo1234", false).Success)

	require.NoError(t, f.gateway.Logout())

	session, err := f.gateway.CurrentSession()
	require.NoError(t, err)
	assert.Nil(t, session)

	// Logging out twice is harmless.
	assert.NoError(t, f.gateway.Logout())
}
