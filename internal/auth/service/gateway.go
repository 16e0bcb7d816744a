package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/prodlens/prodlens-core/config"
	"github.com/prodlens/prodlens-core/internal/auth/domain"
	"github.com/prodlens/prodlens-core/internal/auth/repository"
	"github.com/prodlens/prodlens-core/internal/collection"
	"github.com/prodlens/prodlens-core/internal/storage"
)

// Fixed artificial delays per operation, scaled by config so tests run
// at zero.
const (
	loginDelay  = time.Second
	signupDelay = time.Second
	socialDelay = 1500 * time.Millisecond
	ssoDelay    = time.Second
	forgotDelay = time.Second
	resetDelay  = time.Second
	verifyDelay = 500 * time.Millisecond
)

// Domains recognized by SSO discovery.
var ssoDomains = []string{"company.com", "enterprise.org", "acme.io"}

// Gateway simulates the authentication backend. Every operation sleeps
// its artificial delay and resolves to a tagged result; business failures
// never surface as Go errors, matching direct UI consumption.
type Gateway struct {
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	tokens   *repository.TokenRepository
	ids      *collection.IDGenerator
	cfg      config.AuthConfig
	limiter  *rate.Limiter
	logger   *zap.Logger
}

func NewGateway(
	users *repository.UserRepository,
	sessions *repository.SessionRepository,
	tokens *repository.TokenRepository,
	ids *collection.IDGenerator,
	cfg config.AuthConfig,
	logger *zap.Logger,
) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	perHour := cfg.ResetLinksPerHr
	if perHour <= 0 {
		perHour = 10
	}
	return &Gateway{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		ids:      ids,
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Every(time.Hour/time.Duration(perHour)), perHour),
		logger:   logger,
	}
}

// Login checks the credentials against the user table. Demo behavior is
// preserved: an unknown email with any password of 8+ characters signs in
// as a freshly minted user.
func (g *Gateway) Login(email, password string, rememberMe bool) domain.Result {
	g.sleep(loginDelay)

	normalized := strings.ToLower(email)
	if user, ok := g.users.Authenticate(normalized, password); ok {
		if err := g.saveSession(user, rememberMe); err != nil {
			return failure("Something went wrong, please try again")
		}
		g.logger.Info("login", zap.String("email", normalized))
		return success()
	}

	if len(password) >= 8 {
		user := domain.User{
			ID:       g.nextUserID(),
			Name:     strings.SplitN(normalized, "@", 2)[0],
			Email:    normalized,
			Provider: domain.ProviderEmail,
		}
		if err := g.saveSession(user, rememberMe); err != nil {
			return failure("Something went wrong, please try again")
		}
		g.logger.Info("login (demo user)", zap.String("email", normalized))
		return success()
	}

	return failure("Invalid email or password")
}

// Signup registers a new user and signs them in immediately.
func (g *Gateway) Signup(name, email, password string) domain.Result {
	g.sleep(signupDelay)

	normalized := strings.ToLower(email)
	user := domain.User{
		ID:       g.nextUserID(),
		Name:     name,
		Email:    normalized,
		Provider: domain.ProviderEmail,
	}

	if err := g.users.Create(user, password); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return failure("An account with this email already exists")
		}
		return failure("Something went wrong, please try again")
	}

	if err := g.saveSession(user, false); err != nil {
		return failure("Something went wrong, please try again")
	}
	g.logger.Info("signup", zap.String("email", normalized))
	return success()
}

// SocialLogin simulates a successful OAuth round trip with the named
// provider.
func (g *Gateway) SocialLogin(provider string) domain.Result {
	g.sleep(socialDelay)

	user := domain.User{
		ID:       g.nextUserID(),
		Name:     titleCase(provider) + " User",
		Email:    fmt.Sprintf("user@%s.com", provider),
		Provider: provider,
	}
	if err := g.saveSession(user, true); err != nil {
		return failure("Something went wrong, please try again")
	}
	g.logger.Info("social login", zap.String("provider", provider))
	return success()
}

// SSOLogin simulates identity-provider discovery. Recognized company
// domains yield a redirect URL; anything else signs in a demo SSO user.
func (g *Gateway) SSOLogin(companyDomain string) domain.SSOResult {
	g.sleep(ssoDelay)

	normalized := strings.ToLower(companyDomain)
	for _, d := range ssoDomains {
		if strings.Contains(normalized, d) {
			return domain.SSOResult{
				Result:      domain.Result{Success: true},
				RedirectURL: fmt.Sprintf("https://sso.%s/auth?client=prodlens", normalized),
			}
		}
	}

	user := domain.User{
		ID:       g.nextUserID(),
		Name:     "SSO User",
		Email:    "user@" + normalized,
		Provider: domain.ProviderOkta,
	}
	if err := g.saveSession(user, true); err != nil {
		return domain.SSOResult{Result: failure("Something went wrong, please try again")}
	}
	g.logger.Info("sso login", zap.String("domain", normalized))
	return domain.SSOResult{Result: domain.Result{Success: true}}
}

// ForgotPassword issues a reset token with a short expiry. Issuance is
// rate limited; no email is actually sent.
func (g *Gateway) ForgotPassword(email string) domain.Result {
	g.sleep(forgotDelay)

	if !g.limiter.Allow() {
		return failure("Too many reset requests, please try again later")
	}

	normalized := strings.ToLower(email)
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	expires := time.Now().Add(g.resetTokenTTL())
	if err := g.tokens.Issue(token, normalized, expires); err != nil {
		return failure("Something went wrong, please try again")
	}

	g.logger.Info("password reset link issued",
		zap.String("email", normalized),
		zap.String("link", "/reset-password?token="+token))
	return success()
}

// VerifyResetToken reports whether a token is known and not yet expired.
func (g *Gateway) VerifyResetToken(token string) domain.VerifyResult {
	g.sleep(verifyDelay)
	return g.verify(token)
}

// ResetPassword consumes a valid token and replaces the user's password.
func (g *Gateway) ResetPassword(token, password string) domain.Result {
	g.sleep(resetDelay)

	v := g.VerifyResetToken(token)
	if !v.Valid || v.Email == "" {
		return failure("Invalid or expired reset link")
	}

	if err := g.users.SetPassword(v.Email, password); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return failure("Something went wrong, please try again")
	}
	if err := g.tokens.Consume(token); err != nil {
		return failure("Something went wrong, please try again")
	}
	g.logger.Info("password reset", zap.String("email", v.Email))
	return success()
}

// CurrentSession restores the persisted session if it has not lapsed.
// A lapsed session is cleared and reported as absent.
func (g *Gateway) CurrentSession() (*domain.Session, error) {
	session, err := g.sessions.Load()
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !session.Valid(time.Now()) {
		if err := g.sessions.Clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &session, nil
}

// Logout clears the session synchronously; there is no delay.
func (g *Gateway) Logout() error {
	return g.sessions.Clear()
}

func (g *Gateway) verify(token string) domain.VerifyResult {
	rec, ok, err := g.tokens.Get(token)
	if err != nil || !ok {
		return domain.VerifyResult{Valid: false}
	}
	if !time.Now().Before(rec.ExpiresAt) {
		return domain.VerifyResult{Valid: false}
	}
	return domain.VerifyResult{Valid: true, Email: rec.Email}
}

func (g *Gateway) saveSession(user domain.User, rememberMe bool) error {
	ttl := g.cfg.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if rememberMe {
		ttl = g.cfg.RememberMeTTL
		if ttl <= 0 {
			ttl = 30 * 24 * time.Hour
		}
	}
	return g.sessions.Save(domain.Session{User: user, ExpiresAt: time.Now().Add(ttl)})
}

func (g *Gateway) resetTokenTTL() time.Duration {
	if g.cfg.ResetTokenTTL > 0 {
		return g.cfg.ResetTokenTTL
	}
	return time.Hour
}

func (g *Gateway) nextUserID() string {
	return strconv.FormatInt(g.ids.Next(), 10)
}

// sleep runs the operation's artificial delay to completion; submitted
// gateway calls are never cancelled mid-flight.
func (g *Gateway) sleep(d time.Duration) {
	scaled := time.Duration(float64(d) * g.cfg.DelayScale)
	if scaled > 0 {
		time.Sleep(scaled)
	}
}

func success() domain.Result {
	return domain.Result{Success: true}
}

func failure(msg string) domain.Result {
	return domain.Result{Success: false, Error: msg}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
