package lists

import (
	"context"

	"github.com/dmitrijs2005/sharedlists/internal/server/models"
)

// Repository persists shared lists.
type Repository interface {
	Create(ctx context.Context, list *models.TodoList) error
	GetByID(ctx context.Context, id string) (*models.TodoList, error)
}
