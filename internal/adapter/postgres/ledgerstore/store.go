// Package ledgerstore implements ledger.Store on a PostgreSQL table shared by
// all namespaces.
package ledgerstore

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campus-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

const table = "ledger_entries"

// Store is a ledger.Store for one namespace.
type Store struct {
	pool      *pgxpool.Pool
	namespace ledger.Namespace
}

// New creates a store scoped to namespace.
func New(pool *pgxpool.Pool, namespace ledger.Namespace) *Store {
	return &Store{pool: pool, namespace: namespace}
}

func (s *Store) Get(ctx context.Context, key ledger.Key) ([]byte, bool, error) {
	query, args, err := postgres.Builder().
		Select("value").
		From(table).
		Where(squirrel.Eq{"namespace": string(s.namespace), "key": key.String()}).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var raw []byte
	err = postgres.QuerierFromCtx(ctx, s.pool).QueryRow(ctx, query, args...).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, postgres.MapError(err, "ledger_entry", key.String())
	}
	return raw, true, nil
}

func (s *Store) Set(ctx context.Context, key ledger.Key, value []byte) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("namespace", "key", "value", "updated_at").
		Values(string(s.namespace), key.String(), value, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, s.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "ledger_entry", key.String())
	}
	return nil
}

func (s *Store) Has(ctx context.Context, key ledger.Key) (bool, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"namespace": string(s.namespace), "key": key.String()}).
		ToSql()
	if err != nil {
		return false, err
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, s.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return false, postgres.MapError(err, "ledger_entry", key.String())
	}
	return n > 0, nil
}

var _ ledger.Store = (*Store)(nil)
