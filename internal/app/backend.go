package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/heartmarshall/campus-ledger/internal/adapter/memory"
	"github.com/heartmarshall/campus-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/campus-ledger/internal/adapter/postgres/journal"
	"github.com/heartmarshall/campus-ledger/internal/adapter/postgres/ledgerstore"
	"github.com/heartmarshall/campus-ledger/internal/adapter/sqlite"
	"github.com/heartmarshall/campus-ledger/internal/config"
	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// TxRunner runs fn as one atomic invocation.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Journal records successful invocations.
type Journal interface {
	Append(ctx context.Context, inv domain.Invocation) error
	ListRecent(ctx context.Context, namespace string, limit int) ([]domain.Invocation, error)
}

// Namespace bundles the storage dependencies of one ledger namespace.
type Namespace struct {
	Store   ledger.Store
	Tx      TxRunner
	Journal Journal
}

// Backend is an opened ledger backend for both namespaces.
type Backend struct {
	Driver     string
	Governance Namespace
	Wallet     Namespace

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks backend connectivity.
func (b *Backend) Ping(ctx context.Context) error {
	return b.ping(ctx)
}

// Close releases connections held by the backend.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// OpenBackend connects to the configured ledger driver. PostgreSQL schemas
// are managed by cmd/migrate; SQLite migrates on open.
func OpenBackend(ctx context.Context, cfg config.DatabaseConfig) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		jr := journal.New(pool)
		ns := func(n ledger.Namespace) Namespace {
			return Namespace{
				Store:   ledgerstore.New(pool, n),
				Tx:      postgres.NewTxManager(pool, n.String()),
				Journal: jr,
			}
		}
		return &Backend{
			Driver:     cfg.Driver,
			Governance: ns(ledger.NamespaceGovernance),
			Wallet:     ns(ledger.NamespaceWallet),
			ping:       pool.Ping,
			close:      pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return sqliteBackend(cfg.Driver, db), nil

	case config.DriverMemory:
		db := memory.New()
		jr := memory.NewJournal(db)
		return &Backend{
			Driver:     cfg.Driver,
			Governance: Namespace{Store: memory.NewStore(db, ledger.NamespaceGovernance), Tx: db, Journal: jr},
			Wallet:     Namespace{Store: memory.NewStore(db, ledger.NamespaceWallet), Tx: db, Journal: jr},
			ping:       db.Ping,
		}, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

func sqliteBackend(driver string, db *sql.DB) *Backend {
	// One connection serializes every transaction, so both namespaces can
	// share a manager.
	tx := sqlite.NewTxManager(db)
	jr := sqlite.NewJournal(db)
	return &Backend{
		Driver:     driver,
		Governance: Namespace{Store: sqlite.NewStore(db, ledger.NamespaceGovernance), Tx: tx, Journal: jr},
		Wallet:     Namespace{Store: sqlite.NewStore(db, ledger.NamespaceWallet), Tx: tx, Journal: jr},
		ping:       db.PingContext,
		close:      func() { _ = db.Close() },
	}
}
