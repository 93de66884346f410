// Package repomanager hands out repositories bound to a connection or a
// transaction, and prepares the storage they run on.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophaccount/internal/dbx"
	"github.com/dmitrijs2005/gophaccount/internal/server/repositories/users"
)

type RepositoryManager interface {
	// RunMigrations brings the schema up to date.
	RunMigrations(ctx context.Context) error
	// Users returns the user repository bound to db. Managers without a
	// database ignore db.
	Users(db dbx.DBTX) users.Repository
	// InTx runs fn atomically; repositories built from tx take part in it.
	InTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error
	// Conn is the handle for non-transactional work; nil without a database.
	Conn() dbx.DBTX
	Close() error
}
