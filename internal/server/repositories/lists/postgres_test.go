package lists

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

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

const qInsert = `(?s)^INSERT\s+INTO\s+todo_lists\s*\(id,\s*title,\s*created_by\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+created_at$`

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(qInsert).
		WithArgs("l1", "Groceries", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	list := &models.TodoList{ID: "l1", Title: "Groceries", CreatedBy: "u1"}
	require.NoError(t, repo.Create(context.Background(), list))
	assert.Equal(t, created, list.CreatedAt)
}

func TestCreate_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectQuery(qInsert).WillReturnError(errors.New("down"))

	err := repo.Create(context.Background(), &models.TodoList{ID: "l1", CreatedBy: "ghost"})
	assert.ErrorIs(t, err, common.ErrUserNotFound)

	err = repo.Create(context.Background(), &models.TodoList{ID: "l2"})
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestGetByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^SELECT\s+id,\s*title,\s*created_by,\s*created_at\s+FROM\s+todo_lists\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectQuery(q).WithArgs("l1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "created_by", "created_at"}).AddRow("l1", "Trip", "u1", time.Now()))
	mock.ExpectQuery(q).WithArgs("l2").WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(context.Background(), "l1")
	require.NoError(t, err)
	assert.Equal(t, "Trip", got.Title)

	_, err = repo.GetByID(context.Background(), "l2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
