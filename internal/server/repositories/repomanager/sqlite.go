package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/orderly-app/orderly/internal/dbx"
	"github.com/orderly-app/orderly/internal/server/migrations"
	"github.com/orderly-app/orderly/internal/server/repositories/friends"
	"github.com/orderly-app/orderly/internal/server/repositories/messages"
	"github.com/orderly-app/orderly/internal/server/repositories/users"
)

// SQLiteRepositoryManager vends SQLite-backed repositories. Used for
// single-host deployments and throughout the test suite.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Friends(db dbx.DBTX) friends.Repository {
	return friends.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Messages(db dbx.DBTX) messages.Repository {
	return messages.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
