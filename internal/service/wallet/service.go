// Package wallet implements student reward points: registration, event
// attendance rewards and peer transfers.
package wallet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

type ledgerStore interface {
	Get(ctx context.Context, key ledger.Key) ([]byte, bool, error)
	Set(ctx context.Context, key ledger.Key, value []byte) error
	Has(ctx context.Context, key ledger.Key) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type journal interface {
	Append(ctx context.Context, inv domain.Invocation) error
}

type authGate interface {
	Require(ctx context.Context, addr domain.Address) error
}

// Service provides wallet operations.
type Service struct {
	store   ledgerStore
	tx      txManager
	journal journal
	gate    authGate
	clock   clockwork.Clock
	log     *slog.Logger
}

// NewService creates a new wallet service.
func NewService(
	log *slog.Logger,
	store ledgerStore,
	tx txManager,
	journal journal,
	gate authGate,
	clock clockwork.Clock,
) *Service {
	return &Service{
		store:   store,
		tx:      tx,
		journal: journal,
		gate:    gate,
		clock:   clock,
		log:     log.With("service", "wallet"),
	}
}

func (s *Service) now() uint64 {
	return uint64(s.clock.Now().Unix())
}

func (s *Service) balance(ctx context.Context, addr domain.Address) (int64, error) {
	return ledger.LoadOr(ctx, s.store, balanceKey(addr), int64(0))
}

func (s *Service) setBalance(ctx context.Context, addr domain.Address, amount int64) error {
	return ledger.Save(ctx, s.store, balanceKey(addr), amount)
}

func (s *Service) record(ctx context.Context, op domain.Operation, caller domain.Address, now uint64, details map[string]any) error {
	err := s.journal.Append(ctx, domain.Invocation{
		Namespace:  ledger.NamespaceWallet.String(),
		Operation:  op,
		Caller:     caller,
		Details:    details,
		LedgerTime: now,
	})
	if err != nil {
		return fmt.Errorf("journal %s: %w", op, err)
	}
	return nil
}
