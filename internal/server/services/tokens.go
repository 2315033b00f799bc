package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/dbx"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sharedlists/internal/timex"
)

// RefreshTokenStore creates, checks and revokes opaque refresh tokens. Only
// the SHA-256 digest of a token is persisted.
type RefreshTokenStore struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	size        int
	validity    time.Duration
	now         timex.Clock
}

// NewRefreshTokenStore returns a store issuing tokens of size random bytes
// that stay valid for validity.
func NewRefreshTokenStore(db dbx.DBTX, m repomanager.RepositoryManager, size int, validity time.Duration, now timex.Clock) *RefreshTokenStore {
	if now == nil {
		now = timex.SystemClock
	}
	return &RefreshTokenStore{db: db, repomanager: m, size: size, validity: validity, now: now}
}

// WithDB returns a copy of the store that runs against db, typically a *sql.Tx.
func (s *RefreshTokenStore) WithDB(db dbx.DBTX) *RefreshTokenStore {
	c := *s
	c.db = db
	return &c
}

// Generate issues a new token for userID. Earlier tokens stay valid.
func (s *RefreshTokenStore) Generate(ctx context.Context, userID string) (string, error) {
	ok, err := s.repomanager.Users(s.db).Exists(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("error checking user: %w", err)
	}
	if !ok {
		return "", common.ErrUserNotFound
	}

	token, err := common.MakeRandHexString(s.size)
	if err != nil {
		return "", fmt.Errorf("error generating refresh token: %w", err)
	}

	expires := s.now().Add(s.validity)
	if err := s.repomanager.RefreshTokens(s.db).Create(ctx, userID, common.HashToken(token), expires); err != nil {
		return "", fmt.Errorf("error saving refresh token: %w", err)
	}
	return token, nil
}

// Validate reports whether token was issued to userID and has not expired.
// Expired rows are left in place.
func (s *RefreshTokenStore) Validate(ctx context.Context, userID, token string) (bool, error) {
	if userID == "" || token == "" {
		return false, nil
	}

	rt, err := s.repomanager.RefreshTokens(s.db).Find(ctx, userID, common.HashToken(token))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error searching refresh token: %w", err)
	}
	return rt.Expires.After(s.now()), nil
}

// Revoke deletes the token and reports whether this call removed it. Of
// several concurrent revocations of one token exactly one sees true.
func (s *RefreshTokenStore) Revoke(ctx context.Context, userID, token string) (bool, error) {
	if userID == "" || token == "" {
		return false, nil
	}

	ok, err := s.repomanager.RefreshTokens(s.db).Delete(ctx, userID, common.HashToken(token))
	if err != nil {
		return false, fmt.Errorf("error deleting refresh token: %w", err)
	}
	return ok, nil
}

// PurgeExpired removes every token that expired before now.
func (s *RefreshTokenStore) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repomanager.RefreshTokens(s.db).DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error purging refresh tokens: %w", err)
	}
	return n, nil
}
