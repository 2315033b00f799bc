package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/dbx"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/repomanager"
)

// PermissionResolver answers what a user may do on a list. It reads the
// store on every call.
type PermissionResolver struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

func NewPermissionResolver(db dbx.DBTX, m repomanager.RepositoryManager) *PermissionResolver {
	return &PermissionResolver{db: db, repomanager: m}
}

// WithDB returns a resolver bound to db.
func (r *PermissionResolver) WithDB(db dbx.DBTX) *PermissionResolver {
	return &PermissionResolver{db: db, repomanager: r.repomanager}
}

// Resolve returns the user's access to the list. A member without a role,
// or whose role belongs to another list, is read-only.
func (r *PermissionResolver) Resolve(ctx context.Context, listID, userID string) (models.Access, error) {
	_, perms, err := r.repomanager.Members(r.db).FindWithRole(ctx, listID, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.Access{Kind: models.AccessNone}, nil
		}
		return models.Access{}, fmt.Errorf("error resolving membership: %w", err)
	}
	if perms == nil {
		return models.Access{Kind: models.AccessReadOnly}, nil
	}
	return models.Access{Kind: models.AccessGranted, Permissions: *perms}, nil
}

// Check returns common.ErrForbidden unless the user is a member whose role
// grants perm.
func (r *PermissionResolver) Check(ctx context.Context, listID, userID string, perm models.Permission) error {
	access, err := r.Resolve(ctx, listID, userID)
	if err != nil {
		return err
	}
	if !access.Allows(perm) {
		return fmt.Errorf("%w: %s on list %s", common.ErrForbidden, perm, listID)
	}
	return nil
}
