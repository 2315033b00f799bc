// Package refreshtokens provides a PostgreSQL-backed repository for the
// refresh tokens issued by the authentication flow.
package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/dbx"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a token digest for userID. A missing user surfaces as
// common.ErrUserNotFound through the foreign key.
func (r *PostgresRepository) Create(ctx context.Context, userID string, tokenHash string, expires time.Time) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, tokenHash, expires); err != nil {
		if _, ok := dbx.ForeignKeyViolation(err); ok {
			return common.ErrUserNotFound
		}
		return dbx.Error(err)
	}
	return nil
}

// Find returns the row for (userID, tokenHash) or common.ErrorNotFound.
// Expired rows are returned as-is; the caller decides.
func (r *PostgresRepository) Find(ctx context.Context, userID string, tokenHash string) (*models.RefreshToken, error) {
	query := `
		SELECT id::text, user_id, token, expires_at, created_at
		FROM refresh_tokens
		WHERE user_id = $1 AND token = $2
	`
	t := &models.RefreshToken{}
	err := r.db.QueryRowContext(ctx, query, userID, tokenHash).Scan(&t.ID, &t.UserID, &t.Token, &t.Expires, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Error(err)
	}
	return t, nil
}

// Delete removes (userID, tokenHash) and reports whether a row was removed.
// Under concurrent calls with the same token exactly one sees true.
func (r *PostgresRepository) Delete(ctx context.Context, userID string, tokenHash string) (bool, error) {
	query := `
		DELETE FROM refresh_tokens
		WHERE user_id = $1 AND token = $2
	`
	res, err := r.db.ExecContext(ctx, query, userID, tokenHash)
	if err != nil {
		return false, dbx.Error(err)
	}
	ok, err := dbx.Affected(res)
	if err != nil {
		return false, dbx.Error(err)
	}
	return ok, nil
}

// DeleteExpired purges every token whose expiry is not after now.
func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, dbx.Error(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, dbx.Error(err)
	}
	return n, nil
}
