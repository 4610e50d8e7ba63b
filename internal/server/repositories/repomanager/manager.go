// Package repomanager vends backend-specific repository implementations and
// owns schema migrations (via goose). The backend is selected from the DSN:
// a postgres:// or postgresql:// scheme means PostgreSQL, anything else is
// treated as a SQLite database path.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/orderly-app/orderly/internal/dbx"
	"github.com/orderly-app/orderly/internal/server/repositories/friends"
	"github.com/orderly-app/orderly/internal/server/repositories/messages"
	"github.com/orderly-app/orderly/internal/server/repositories/users"
)

// RepositoryManager binds repositories to a DBTX, so a service can run
// several repository calls inside one transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Friends(db dbx.DBTX) friends.Repository
	Messages(db dbx.DBTX) messages.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}

// Open opens the database named by dsn and returns it together with the
// matching RepositoryManager.
func Open(dsn string) (*sql.DB, RepositoryManager, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("db open error: %w", err)
		}
		return db, &PostgresRepositoryManager{}, nil
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}
	return db, &SQLiteRepositoryManager{}, nil
}
