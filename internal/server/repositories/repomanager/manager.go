package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/shelfkeeper/internal/dbx"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (pool or transaction)
// and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
