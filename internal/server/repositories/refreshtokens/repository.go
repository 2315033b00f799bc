package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/server/models"
)

// Repository stores refresh token digests. Callers pass the hashed value.
type Repository interface {
	Create(ctx context.Context, userID string, tokenHash string, expires time.Time) error
	Find(ctx context.Context, userID string, tokenHash string) (*models.RefreshToken, error)
	Delete(ctx context.Context, userID string, tokenHash string) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
