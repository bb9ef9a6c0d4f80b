// Package migrations embeds the goose migrations for every SQL backend.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the PostgreSQL migration set.
func Postgres() fs.FS { return mustSub("postgres") }

// SQLite returns the SQLite migration set.
func SQLite() fs.FS { return mustSub("sqlite") }

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(fmt.Sprintf("migrations: %s: %v", dir, err))
	}
	return sub
}

// Up applies all pending migrations for dialect and returns how many ran.
// goose.NewProvider handles $$-delimited bodies that the legacy goose.Up
// would split on semicolons.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect) (int, error) {
	var fsys fs.FS
	switch dialect {
	case goose.DialectPostgres:
		fsys = Postgres()
	case goose.DialectSQLite3:
		fsys = SQLite()
	default:
		return 0, fmt.Errorf("migrations: unsupported dialect %q", dialect)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}
