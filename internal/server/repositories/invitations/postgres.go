// Package invitations provides the PostgreSQL-backed invitation link repository.
package invitations

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/dbx"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create stores link; link.Value must already hold the digest.
func (r *PostgresRepository) Create(ctx context.Context, link *models.InvitationLink) error {
	query := `
		INSERT INTO invitation_links (id, todo_list_id, value, role_id, valid_to)
		VALUES ($1, $2, $3, $4, $5)
	`
	var roleID sql.NullString
	if link.RoleID != nil {
		roleID = sql.NullString{String: *link.RoleID, Valid: true}
	}
	if _, err := r.db.ExecContext(ctx, query, link.ID, link.TodoListID, link.Value, roleID, link.ValidTo); err != nil {
		if _, ok := dbx.ForeignKeyViolation(err); ok {
			return common.ErrorNotFound
		}
		return dbx.Error(err)
	}
	return nil
}

func (r *PostgresRepository) Take(ctx context.Context, valueHash string) (*models.InvitationLink, error) {
	query := `
		DELETE FROM invitation_links
		WHERE value = $1
		RETURNING id, todo_list_id, value, role_id, valid_to
	`
	link := &models.InvitationLink{}
	var roleID sql.NullString
	err := r.db.QueryRowContext(ctx, query, valueHash).Scan(&link.ID, &link.TodoListID, &link.Value, &roleID, &link.ValidTo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Error(err)
	}
	if roleID.Valid {
		link.RoleID = &roleID.String
	}
	return link, nil
}
