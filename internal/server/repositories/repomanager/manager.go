package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sharedlists/internal/dbx"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/invitations"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/lists"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/members"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/roles"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same code against *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Lists(db dbx.DBTX) lists.Repository
	Roles(db dbx.DBTX) roles.Repository
	Members(db dbx.DBTX) members.Repository
	Invitations(db dbx.DBTX) invitations.Repository
}
