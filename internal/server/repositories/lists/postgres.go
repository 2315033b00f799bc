// Package lists provides the PostgreSQL-backed repository for shared lists.
package lists

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

// Create inserts list and fills CreatedAt.
func (r *PostgresRepository) Create(ctx context.Context, list *models.TodoList) error {
	query := `
		INSERT INTO todo_lists (id, title, created_by)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	if err := r.db.QueryRowContext(ctx, query, list.ID, list.Title, list.CreatedBy).Scan(&list.CreatedAt); err != nil {
		if _, ok := dbx.ForeignKeyViolation(err); ok {
			return common.ErrUserNotFound
		}
		return dbx.Error(err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.TodoList, error) {
	query := `SELECT id, title, created_by, created_at FROM todo_lists WHERE id = $1`

	list := &models.TodoList{}
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&list.ID, &list.Title, &list.CreatedBy, &list.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Error(err)
	}
	return list, nil
}
