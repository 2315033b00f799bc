package members

import (
	"context"

	"github.com/dmitrijs2005/sharedlists/internal/server/models"
)

// Repository persists list memberships.
type Repository interface {
	// FindWithRole returns the membership and, when the member holds a role
	// of the same list, that role's permissions. A nil permission set means
	// read-only. Non-members yield common.ErrorNotFound.
	FindWithRole(ctx context.Context, listID, userID string) (*models.TodoListMember, *models.RolePermissions, error)
	Add(ctx context.Context, member *models.TodoListMember) error
	Delete(ctx context.Context, listID, userID string) (bool, error)
	UpdateRole(ctx context.Context, listID, userID string, roleID *string) (bool, error)
}
