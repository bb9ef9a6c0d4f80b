// Command migrate applies pending schema migrations to the configured
// SQL backend.
//
// Usage:
//
//	migrate
//
// Requires DATABASE_DRIVER (postgres or sqlite) and DATABASE_DSN.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/heartmarshall/campus-ledger/migrations"
)

func main() {
	driver := os.Getenv("DATABASE_DRIVER")
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var (
		db      *sql.DB
		dialect goose.Dialect
		err     error
	)
	switch driver {
	case "", "postgres":
		db, err = sql.Open("pgx", dsn)
		dialect = goose.DialectPostgres
	case "sqlite":
		db, err = sql.Open("sqlite", dsn)
		dialect = goose.DialectSQLite3
	default:
		log.Fatalf("unsupported DATABASE_DRIVER %q", driver)
	}
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	n, err := migrations.Up(ctx, db, dialect)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}

	fmt.Printf("Applied %d migration(s).\n", n)
}
