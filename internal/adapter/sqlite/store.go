package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

const entriesTable = "ledger_entries"

// Store is a ledger.Store for one namespace.
type Store struct {
	db        *sql.DB
	namespace ledger.Namespace
}

// NewStore creates a store scoped to namespace.
func NewStore(db *sql.DB, namespace ledger.Namespace) *Store {
	return &Store{db: db, namespace: namespace}
}

func (s *Store) Get(ctx context.Context, key ledger.Key) ([]byte, bool, error) {
	query, args, err := builder().
		Select("value").
		From(entriesTable).
		Where(squirrel.Eq{"namespace": string(s.namespace), "key": key.String()}).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var raw []byte
	err = QuerierFromCtx(ctx, s.db).QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, MapError(err, "ledger_entry", key.String())
	}
	return raw, true, nil
}

func (s *Store) Set(ctx context.Context, key ledger.Key, value []byte) error {
	query, args, err := builder().
		Insert(entriesTable).
		Columns("namespace", "key", "value", "updated_at").
		Values(string(s.namespace), key.String(), value, time.Now().UTC().UnixMilli()).
		Suffix("ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := QuerierFromCtx(ctx, s.db).ExecContext(ctx, query, args...); err != nil {
		return MapError(err, "ledger_entry", key.String())
	}
	return nil
}

func (s *Store) Has(ctx context.Context, key ledger.Key) (bool, error) {
	query, args, err := builder().
		Select("count(*)").
		From(entriesTable).
		Where(squirrel.Eq{"namespace": string(s.namespace), "key": key.String()}).
		ToSql()
	if err != nil {
		return false, err
	}

	var n int
	if err := QuerierFromCtx(ctx, s.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, MapError(err, "ledger_entry", key.String())
	}
	return n > 0, nil
}

var _ ledger.Store = (*Store)(nil)
