package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager manages database transactions using the context pattern.
// Every transaction first takes a transaction-scoped advisory lock on
// lockKey, so at most one transaction per lock key runs at a time across all
// server instances sharing the database.
// Nested RunInTx calls are NOT supported: calling RunInTx inside a RunInTx
// callback would wait on the lock its own outer transaction holds.
type TxManager struct {
	pool    *pgxpool.Pool
	lockKey string
}

// NewTxManager creates a TxManager that serializes on lockKey.
func NewTxManager(pool *pgxpool.Pool, lockKey string) *TxManager {
	return &TxManager{pool: pool, lockKey: lockKey}
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default), with the advisory
// lock providing serial execution per lock key.
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, m.lockKey); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("acquire ledger lock %q: %w", m.lockKey, err)
	}

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
