// Package governance implements club registry, membership and proposal
// voting on top of a namespaced ledger store.
package governance

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

// Service provides governance operations.
type Service struct {
	store   ledgerStore
	tx      txManager
	journal journal
	gate    authGate
	clock   clockwork.Clock
	log     *slog.Logger
}

// NewService creates a new governance service.
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
		log:     log.With("service", "governance"),
	}
}

// now reads the ledger clock. Call it once per invocation.
func (s *Service) now() uint64 {
	return uint64(s.clock.Now().Unix())
}

func (s *Service) admin(ctx context.Context) (domain.Address, error) {
	admin, ok, err := ledger.Load[domain.Address](ctx, s.store, adminKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrNotInitialized
	}
	return admin, nil
}

func (s *Service) loadClub(ctx context.Context, id string) (*domain.Club, error) {
	club, ok, err := ledger.Load[domain.Club](ctx, s.store, clubKey(id))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrClubNotFound
	}
	return &club, nil
}

func (s *Service) isMember(ctx context.Context, clubID string, addr domain.Address) (bool, error) {
	ok, err := s.store.Has(ctx, memberKey(clubID, addr))
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return ok, nil
}

func (s *Service) record(ctx context.Context, op domain.Operation, caller domain.Address, now uint64, details map[string]any) error {
	err := s.journal.Append(ctx, domain.Invocation{
		Namespace:  ledger.NamespaceGovernance.String(),
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
