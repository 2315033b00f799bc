// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing, refreshing and
// revoking the access/refresh token pair.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/cryptox"
	"github.com/dmitrijs2005/sharedlists/internal/dbx"
	"github.com/dmitrijs2005/sharedlists/internal/logging"
	"github.com/dmitrijs2005/sharedlists/internal/server/auth"
	"github.com/dmitrijs2005/sharedlists/internal/server/config"
	"github.com/dmitrijs2005/sharedlists/internal/server/events"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sharedlists/internal/timex"
	"google.golang.org/grpc/peer"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken       string
	ExpirationSeconds int64
	RefreshToken      string
}

// LoginLimiter throttles login attempts per key.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint tokens
// - Refresh: rotate refresh tokens and mint new access tokens
// - Logout: revoke a refresh token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *auth.TokenCodec
	tokens      *RefreshTokenStore
	identity    Identity
	limiter     LoginLimiter
	publisher   events.Publisher
	logger      logging.Logger
	now         timex.Clock
}

type Option func(*UserService)

// WithLimiter enables login throttling.
func WithLimiter(l LoginLimiter) Option {
	return func(s *UserService) { s.limiter = l }
}

func WithPublisher(p events.Publisher) Option {
	return func(s *UserService) { s.publisher = p }
}

func WithLogger(l logging.Logger) Option {
	return func(s *UserService) { s.logger = l }
}

// WithClock replaces the clock used for token expiry.
func WithClock(now timex.Clock) Option {
	return func(s *UserService) { s.now = now }
}

// WithIdentity replaces the default argon2id-backed identity service.
func WithIdentity(i Identity) Option {
	return func(s *UserService) { s.identity = i }
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, opts ...Option) *UserService {
	s := &UserService{
		db:          db,
		repomanager: m,
		publisher:   events.Nop{},
		logger:      logging.Nop{},
		now:         timex.SystemClock,
	}
	for _, o := range opts {
		o(s)
	}
	if s.identity == nil {
		s.identity = NewIdentityService(db, m, cryptox.NewPasswordHasher(cryptox.DefaultParams))
	}

	s.codec = auth.NewTokenCodec(auth.TokenConfig{
		SecretKey: cfg.SecretKey,
		Issuer:    cfg.Issuer,
		Audience:  cfg.Audience,
		Lifetime:  cfg.AccessTokenValidityDuration,
	}, s.now)
	s.tokens = NewRefreshTokenStore(db, m, cfg.RefreshTokenSize, cfg.RefreshTokenValidityDuration(), s.now)
	s.logger = s.logger.With("module", "services.user")
	return s
}

// Codec exposes the access token codec, e.g. for the transport's auth check.
func (s *UserService) Codec() *auth.TokenCodec {
	return s.codec
}

// Tokens exposes the refresh token store.
func (s *UserService) Tokens() *RefreshTokenStore {
	return s.tokens
}

// loginKey is the throttling key: the normalized login plus the caller's
// host when the request came in over a connection.
func loginKey(ctx context.Context, login string) string {
	key := strings.ToLower(strings.TrimSpace(login))

	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return key
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		host = p.Addr.String()
	}
	return key + "|" + host
}

// Login verifies the credentials and, on success, returns a new TokenPair.
// Unknown logins and wrong passwords both yield common.ErrInvalidCredentials.
// Attempts are throttled per login and caller host, so failures from one
// address do not lock the account out elsewhere.
func (s *UserService) Login(ctx context.Context, login, password string) (*TokenPair, error) {
	key := loginKey(ctx, login)

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn(ctx, "login limiter unavailable", "error", err)
		case !allowed:
			return nil, common.ErrTooManyLoginAttempts
		}
	}

	user, err := s.identity.Authenticate(ctx, login, password)
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, key); err != nil {
			s.logger.Warn(ctx, "login limiter reset failed", "error", err)
		}
	}

	return s.issuePair(ctx, s.tokens, user)
}

// Register creates a user. Field problems, duplicates included, come back as
// *validation.Errors.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	user, err := s.identity.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.UserRegistered, events.UserRegisteredPayload{
		UserID:   user.ID,
		UserName: user.UserName,
		Email:    user.Email,
	})
	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Refresh exchanges an access token (possibly expired) and a refresh token
// for a new pair. The presented refresh token is revoked and its successor
// stored in one transaction; concurrent refreshes with the same token
// produce at most one pair.
func (s *UserService) Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPair, error) {
	claims, err := s.codec.ReadClaimsIgnoringExpiry(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidAccessToken, err)
	}
	userID := claims.UserID()

	ok, err := s.tokens.Validate(ctx, userID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrInvalidRefreshToken
	}

	user, err := s.identity.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := s.tokens.WithDB(tx)

		revoked, err := store.Revoke(ctx, userID, refreshToken)
		if err != nil {
			return err
		}
		if !revoked {
			return common.ErrInvalidRefreshToken
		}

		var genErr error
		pair, genErr = s.issuePair(ctx, store, user)
		return genErr
	}); err != nil {
		if errors.Is(err, common.ErrInvalidRefreshToken) || errors.Is(err, common.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error rotating refresh token: %w", err)
	}
	return pair, nil
}

// Logout revokes refreshToken of the authenticated user.
func (s *UserService) Logout(ctx context.Context, userID, refreshToken string) error {
	revoked, err := s.tokens.Revoke(ctx, userID, refreshToken)
	if err != nil {
		return err
	}
	if !revoked {
		return common.ErrInvalidRefreshToken
	}
	return nil
}

func (s *UserService) issuePair(ctx context.Context, store *RefreshTokenStore, user *models.User) (*TokenPair, error) {
	access, err := s.codec.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing access token: %w", err)
	}
	refresh, err := store.Generate(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:       access,
		ExpirationSeconds: s.codec.ExpirationSeconds(),
		RefreshToken:      refresh,
	}, nil
}

func (s *UserService) publish(ctx context.Context, key string, payload any) {
	if err := s.publisher.Publish(ctx, key, payload); err != nil {
		s.logger.Warn(ctx, "event publish failed", "event", key, "error", err)
	}
}
