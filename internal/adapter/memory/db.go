// Package memory provides an in-process transactional ledger backend. State
// is lost on restart; it serves development hosts and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// DB holds committed state for every namespace plus the journal.
type DB struct {
	mu          sync.RWMutex
	entries     map[string][]byte // namespace + "\x00" + key
	invocations []domain.Invocation
}

// New creates an empty DB.
func New() *DB {
	return &DB{entries: map[string][]byte{}}
}

// Ping reports whether ctx is still live; the in-process backend has no
// connection to lose.
func (db *DB) Ping(ctx context.Context) error {
	return ctx.Err()
}

// tx buffers writes until commit. Reads fall through to committed state.
type tx struct {
	db          *DB
	writes      map[string][]byte
	invocations []domain.Invocation
}

type txCtxKey struct{}

func txFromCtx(ctx context.Context, db *DB) *tx {
	if t, ok := ctx.Value(txCtxKey{}).(*tx); ok && t.db == db {
		return t
	}
	return nil
}

// RunInTx executes fn with exclusive access to the DB. Writes made through
// stores and the journal become visible only if fn returns nil. A panic in fn
// discards the writes and is re-raised.
func (db *DB) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	t := &tx{db: db, writes: map[string][]byte{}}
	if err := fn(context.WithValue(ctx, txCtxKey{}, t)); err != nil {
		return err
	}

	for k, v := range t.writes {
		db.entries[k] = v
	}
	db.invocations = append(db.invocations, t.invocations...)
	return nil
}

func entryKey(ns ledger.Namespace, key ledger.Key) string {
	return string(ns) + "\x00" + key.String()
}

func (db *DB) get(ctx context.Context, k string) ([]byte, bool) {
	if t := txFromCtx(ctx, db); t != nil {
		if v, ok := t.writes[k]; ok {
			return v, true
		}
		// RunInTx already holds the write lock.
		v, ok := db.entries[k]
		return v, ok
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	v, ok := db.entries[k]
	return v, ok
}

func (db *DB) set(ctx context.Context, k string, v []byte) {
	cp := slices.Clone(v)
	if t := txFromCtx(ctx, db); t != nil {
		t.writes[k] = cp
		return
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	db.entries[k] = cp
}

// Store is a ledger.Store for one namespace of a DB.
type Store struct {
	db        *DB
	namespace ledger.Namespace
}

// NewStore creates a store scoped to namespace.
func NewStore(db *DB, namespace ledger.Namespace) *Store {
	return &Store{db: db, namespace: namespace}
}

func (s *Store) Get(ctx context.Context, key ledger.Key) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	v, ok := s.db.get(ctx, entryKey(s.namespace, key))
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (s *Store) Set(ctx context.Context, key ledger.Key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.db.set(ctx, entryKey(s.namespace, key), value)
	return nil
}

func (s *Store) Has(ctx context.Context, key ledger.Key) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := s.db.get(ctx, entryKey(s.namespace, key))
	return ok, nil
}

var _ ledger.Store = (*Store)(nil)

// Journal is the in-memory invocation log.
type Journal struct {
	db *DB
}

// NewJournal creates a journal over db.
func NewJournal(db *DB) *Journal {
	return &Journal{db: db}
}

// Append records inv, inside the current transaction when ctx carries one.
func (j *Journal) Append(ctx context.Context, inv domain.Invocation) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}
	if t := txFromCtx(ctx, j.db); t != nil {
		t.invocations = append(t.invocations, inv)
		return nil
	}
	j.db.mu.Lock()
	defer j.db.mu.Unlock()
	j.db.invocations = append(j.db.invocations, inv)
	return nil
}

// ListRecent returns up to limit invocations for namespace, newest first.
func (j *Journal) ListRecent(_ context.Context, namespace string, limit int) ([]domain.Invocation, error) {
	j.db.mu.RLock()
	defer j.db.mu.RUnlock()

	var out []domain.Invocation
	for i := len(j.db.invocations) - 1; i >= 0 && len(out) < limit; i-- {
		if j.db.invocations[i].Namespace == namespace {
			out = append(out, j.db.invocations[i])
		}
	}
	return out, nil
}
