package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ledger/internal/domain"
)

const invocationsTable = "invocations"

// Journal is the append-only invocation log.
type Journal struct {
	db *sql.DB
}

// NewJournal creates a new Journal.
func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db}
}

// Append inserts inv. It joins the transaction carried by ctx, if any.
func (j *Journal) Append(ctx context.Context, inv domain.Invocation) error {
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

	query, args, err := builder().
		Insert(invocationsTable).
		Columns("id", "namespace", "operation", "caller", "details", "ledger_time", "created_at").
		Values(inv.ID.String(), inv.Namespace, string(inv.Operation), string(inv.Caller), string(details),
			int64(inv.LedgerTime), inv.CreatedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := QuerierFromCtx(ctx, j.db).ExecContext(ctx, query, args...); err != nil {
		return MapError(err, "invocation", inv.ID.String())
	}
	return nil
}

// ListRecent returns up to limit invocations for namespace, newest first.
func (j *Journal) ListRecent(ctx context.Context, namespace string, limit int) ([]domain.Invocation, error) {
	query, args, err := builder().
		Select("id", "namespace", "operation", "caller", "details", "ledger_time", "created_at").
		From(invocationsTable).
		Where(squirrel.Eq{"namespace": namespace}).
		OrderBy("rowid DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := QuerierFromCtx(ctx, j.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err, "invocation", namespace)
	}
	defer rows.Close()

	var out []domain.Invocation
	for rows.Next() {
		var (
			inv                 domain.Invocation
			id, op, caller      string
			details             string
			ledgerTime, created int64
		)
		if err := rows.Scan(&id, &inv.Namespace, &op, &caller, &details, &ledgerTime, &created); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		if inv.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse invocation id %q: %w", id, err)
		}
		inv.Operation = domain.Operation(op)
		inv.Caller = domain.Address(caller)
		inv.LedgerTime = uint64(ledgerTime)
		inv.CreatedAt = time.UnixMilli(created).UTC()
		if err := json.Unmarshal([]byte(details), &inv.Details); err != nil {
			return nil, fmt.Errorf("invocation unmarshal details: %w", err)
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invocations: %w", err)
	}
	return out, nil
}
