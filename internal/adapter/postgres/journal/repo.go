// Package journal implements the append-only invocation journal using PostgreSQL.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campus-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/campus-ledger/internal/domain"
)

const table = "invocations"

// Repo provides journal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append inserts inv. It joins the transaction carried by ctx, if any.
func (r *Repo) Append(ctx context.Context, inv domain.Invocation) error {
	details, err := json.Marshal(inv.Details)
	if err != nil {
		return fmt.Errorf("invocation marshal details: %w", err)
	}
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "namespace", "operation", "caller", "details", "ledger_time", "created_at").
		Values(inv.ID, inv.Namespace, string(inv.Operation), string(inv.Caller), details, int64(inv.LedgerTime), inv.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "invocation", inv.ID.String())
	}
	return nil
}

// ListRecent returns up to limit invocations for namespace, newest first.
func (r *Repo) ListRecent(ctx context.Context, namespace string, limit int) ([]domain.Invocation, error) {
	query, args, err := postgres.Builder().
		Select("id", "namespace", "operation", "caller", "details", "ledger_time", "created_at").
		From(table).
		Where(squirrel.Eq{"namespace": namespace}).
		OrderBy("seq DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "invocation", namespace)
	}
	defer rows.Close()

	var out []domain.Invocation
	for rows.Next() {
		var (
			inv        domain.Invocation
			op, caller string
			details    []byte
			ledgerTime int64
		)
		if err := rows.Scan(&inv.ID, &inv.Namespace, &op, &caller, &details, &ledgerTime, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		inv.Operation = domain.Operation(op)
		inv.Caller = domain.Address(caller)
		inv.LedgerTime = uint64(ledgerTime)
		if len(details) > 0 {
			if err := json.Unmarshal(details, &inv.Details); err != nil {
				return nil, fmt.Errorf("invocation unmarshal details: %w", err)
			}
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invocations: %w", err)
	}
	return out, nil
}
