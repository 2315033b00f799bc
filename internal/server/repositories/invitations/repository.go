package invitations

import (
	"context"

	"github.com/dmitrijs2005/sharedlists/internal/server/models"
)

// Repository stores invitation links by the digest of their value.
type Repository interface {
	Create(ctx context.Context, link *models.InvitationLink) error
	// Take atomically removes and returns the link, so each value can be
	// redeemed once. Unknown values yield common.ErrorNotFound.
	Take(ctx context.Context, valueHash string) (*models.InvitationLink, error)
}
