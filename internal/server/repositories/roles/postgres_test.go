package roles

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var roleCols = append([]string{"id", "todo_list_id", "name"}, permissionColumns...)

var editor = models.RolePermissions{SetItemState: true, AddItems: true, EditItems: true, DeleteItems: true, EditCategories: true}

func TestPermissionColumns(t *testing.T) {
	assert.Equal(t, "set_item_state, add_items", PermissionColumns("")[:len("set_item_state, add_items")])
	assert.Contains(t, PermissionColumns("r"), "r.manage_invitation_links")
	assert.Len(t, permissionColumns, 10)
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+todo_list_roles\s*\(id,\s*todo_list_id,\s*name,\s*set_item_state,.*manage_invitation_links\)\s*VALUES\s*\(\$1,.*\$13\)$`).
		WithArgs("r1", "l1", "Editor", true, true, true, true, false, false, false, false, true, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.TodoListRole{ID: "r1", TodoListID: "l1", Name: "Editor", Permissions: editor})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UnknownList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+todo_list_roles`).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), &models.TodoListRole{ID: "r1", TodoListID: "missing"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*todo_list_id,\s*name,.*FROM\s+todo_list_roles\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectQuery(q).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(roleCols).
			AddRow("r1", "l1", "Editor", true, true, true, true, false, false, false, false, true, false))
	mock.ExpectQuery(q).WithArgs("r2").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(q).WithArgs("r3").WillReturnError(errors.New("boom"))

	got, err := repo.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "l1", got.TodoListID)
	assert.Equal(t, editor, got.Permissions)

	_, err = repo.Get(context.Background(), "r2")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.Get(context.Background(), "r3")
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestUpdate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+todo_list_roles\s+SET\s+name\s*=\s*\$3,\s*set_item_state\s*=\s*\$4,.*manage_invitation_links\s*=\s*\$13\s+WHERE\s+id\s*=\s*\$1\s+AND\s+todo_list_id\s*=\s*\$2$`
	mock.ExpectExec(q).
		WithArgs("r1", "l1", "Viewer+", true, false, false, false, false, false, false, false, false, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.TodoListRole{ID: "r1", TodoListID: "l1", Name: "Viewer+",
		Permissions: models.RolePermissions{SetItemState: true}})
	require.NoError(t, err)

	err = repo.Update(context.Background(), &models.TodoListRole{ID: "r1", TodoListID: "other"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestNullPermissions_NullIsFalse(t *testing.T) {
	var n NullPermissions
	assert.Equal(t, models.RolePermissions{}, n.Permissions())
	assert.Len(t, n.Dest(), 10)
}
