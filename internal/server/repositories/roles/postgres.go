// Package roles provides the PostgreSQL-backed repository for list roles.
// Each permission is its own boolean column.
package roles

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/dbx"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
)

// permissionColumns lists the flag columns in RolePermissions field order.
var permissionColumns = []string{
	"set_item_state",
	"add_items",
	"edit_items",
	"delete_items",
	"add_members",
	"remove_members",
	"assign_roles",
	"edit_roles",
	"edit_categories",
	"manage_invitation_links",
}

// PermissionColumns returns the flag columns qualified with alias, e.g.
// "r.add_items", joined for a SELECT list.
func PermissionColumns(alias string) string {
	cols := make([]string, len(permissionColumns))
	for i, c := range permissionColumns {
		if alias != "" {
			c = alias + "." + c
		}
		cols[i] = c
	}
	return strings.Join(cols, ", ")
}

func permissionArgs(p models.RolePermissions) []any {
	return []any{
		p.SetItemState, p.AddItems, p.EditItems, p.DeleteItems, p.AddMembers,
		p.RemoveMembers, p.AssignRoles, p.EditRoles, p.EditCategories, p.ManageInvitationLinks,
	}
}

// NullPermissions scans the flag columns of an outer-joined role.
type NullPermissions [10]sql.NullBool

// Dest returns scan destinations in column order.
func (n *NullPermissions) Dest() []any {
	dest := make([]any, len(n))
	for i := range n {
		dest[i] = &n[i]
	}
	return dest
}

// Permissions converts scanned flags; NULL reads as false.
func (n *NullPermissions) Permissions() models.RolePermissions {
	return models.RolePermissions{
		SetItemState:          n[0].Bool,
		AddItems:              n[1].Bool,
		EditItems:             n[2].Bool,
		DeleteItems:           n[3].Bool,
		AddMembers:            n[4].Bool,
		RemoveMembers:         n[5].Bool,
		AssignRoles:           n[6].Bool,
		EditRoles:             n[7].Bool,
		EditCategories:        n[8].Bool,
		ManageInvitationLinks: n[9].Bool,
	}
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, role *models.TodoListRole) error {
	query := `INSERT INTO todo_list_roles (id, todo_list_id, name, ` + PermissionColumns("") + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	args := append([]any{role.ID, role.TodoListID, role.Name}, permissionArgs(role.Permissions)...)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if _, ok := dbx.ForeignKeyViolation(err); ok {
			return common.ErrorNotFound
		}
		return dbx.Error(err)
	}
	return nil
}

// Get returns the role with id or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.TodoListRole, error) {
	query := `SELECT id, todo_list_id, name, ` + PermissionColumns("") + ` FROM todo_list_roles WHERE id = $1`

	role := &models.TodoListRole{}
	var flags NullPermissions
	dest := append([]any{&role.ID, &role.TodoListID, &role.Name}, flags.Dest()...)

	if err := r.db.QueryRowContext(ctx, query, id).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Error(err)
	}
	role.Permissions = flags.Permissions()
	return role, nil
}

// Update rewrites name and flags of a role within its list. A role that is
// missing or belongs to another list yields common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, role *models.TodoListRole) error {
	sets := make([]string, len(permissionColumns))
	for i, c := range permissionColumns {
		sets[i] = c + " = $" + strconv.Itoa(i+4)
	}
	query := `UPDATE todo_list_roles SET name = $3, ` + strings.Join(sets, ", ") + `
		WHERE id = $1 AND todo_list_id = $2`

	args := append([]any{role.ID, role.TodoListID, role.Name}, permissionArgs(role.Permissions)...)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return dbx.Error(err)
	}
	ok, err := dbx.Affected(res)
	if err != nil {
		return dbx.Error(err)
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}
