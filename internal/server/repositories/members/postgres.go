// Package members provides the PostgreSQL-backed membership repository.
package members

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/dbx"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/roles"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindWithRole resolves the membership and its role in one round trip. The
// join also matches on the list id, so a role of another list is never
// returned.
func (r *PostgresRepository) FindWithRole(ctx context.Context, listID, userID string) (*models.TodoListMember, *models.RolePermissions, error) {
	query := `
		SELECT m.user_id, m.todo_list_id, m.role_id, r.id, ` + roles.PermissionColumns("r") + `
		FROM todo_list_members m
		LEFT JOIN todo_list_roles r ON r.id = m.role_id AND r.todo_list_id = m.todo_list_id
		WHERE m.todo_list_id = $1 AND m.user_id = $2
	`
	member := &models.TodoListMember{}
	var roleID, joinedRoleID sql.NullString
	var flags roles.NullPermissions

	dest := append([]any{&member.UserID, &member.TodoListID, &roleID, &joinedRoleID}, flags.Dest()...)
	if err := r.db.QueryRowContext(ctx, query, listID, userID).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, common.ErrorNotFound
		}
		return nil, nil, dbx.Error(err)
	}

	if roleID.Valid {
		member.RoleID = &roleID.String
	}
	if !joinedRoleID.Valid {
		return member, nil, nil
	}
	perms := flags.Permissions()
	return member, &perms, nil
}

// Add inserts a membership. An existing (user, list) pair yields
// common.ErrAlreadyMember; an unknown user, list or role yields
// common.ErrorNotFound.
func (r *PostgresRepository) Add(ctx context.Context, member *models.TodoListMember) error {
	query := `
		INSERT INTO todo_list_members (user_id, todo_list_id, role_id)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, member.UserID, member.TodoListID, nullable(member.RoleID)); err != nil {
		if _, ok := dbx.UniqueViolation(err); ok {
			return common.ErrAlreadyMember
		}
		if _, ok := dbx.ForeignKeyViolation(err); ok {
			return common.ErrorNotFound
		}
		return dbx.Error(err)
	}
	return nil
}

// Delete removes a membership and reports whether it existed.
func (r *PostgresRepository) Delete(ctx context.Context, listID, userID string) (bool, error) {
	query := `DELETE FROM todo_list_members WHERE todo_list_id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, listID, userID)
	if err != nil {
		return false, dbx.Error(err)
	}
	ok, err := dbx.Affected(res)
	if err != nil {
		return false, dbx.Error(err)
	}
	return ok, nil
}

// UpdateRole sets or clears the member's role and reports whether the
// membership existed.
func (r *PostgresRepository) UpdateRole(ctx context.Context, listID, userID string, roleID *string) (bool, error) {
	query := `UPDATE todo_list_members SET role_id = $3 WHERE todo_list_id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, listID, userID, nullable(roleID))
	if err != nil {
		if _, ok := dbx.ForeignKeyViolation(err); ok {
			return false, common.ErrorNotFound
		}
		return false, dbx.Error(err)
	}
	ok, err := dbx.Affected(res)
	if err != nil {
		return false, dbx.Error(err)
	}
	return ok, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
