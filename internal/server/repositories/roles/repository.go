package roles

import (
	"context"

	"github.com/dmitrijs2005/sharedlists/internal/server/models"
)

// Repository persists list roles.
type Repository interface {
	Create(ctx context.Context, role *models.TodoListRole) error
	Get(ctx context.Context, id string) (*models.TodoListRole, error)
	Update(ctx context.Context, role *models.TodoListRole) error
}
