package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/campus-ledger/internal/auth"
	"github.com/heartmarshall/campus-ledger/internal/config"
	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/service/governance"
	"github.com/heartmarshall/campus-ledger/internal/service/wallet"
)

// Services holds the ledger engines built on one backend.
type Services struct {
	Governance *governance.Service
	Wallet     *wallet.Service
}

// NewServices wires both engines to the backend with a shared gate and clock.
func NewServices(logger *slog.Logger, be *Backend, clock clockwork.Clock) *Services {
	gate := auth.NewGate()
	return &Services{
		Governance: governance.NewService(logger, be.Governance.Store, be.Governance.Tx, be.Governance.Journal, gate, clock),
		Wallet:     wallet.NewService(logger, be.Wallet.Store, be.Wallet.Tx, be.Wallet.Journal, gate, clock),
	}
}

type initializer interface {
	IsInitialized(ctx context.Context) (bool, error)
	Initialize(ctx context.Context, admin domain.Address) error
}

// Bootstrap initializes every namespace that has a configured admin and no
// recorded one. A ledger that is already initialized is left untouched, so
// restarts never reset counters or replace the admin.
func (s *Services) Bootstrap(ctx context.Context, logger *slog.Logger, cfg config.LedgerConfig) error {
	targets := []struct {
		name  string
		admin string
		svc   initializer
	}{
		{"governance", cfg.GovernanceAdmin, s.Governance},
		{"wallet", cfg.WalletAdmin, s.Wallet},
	}

	for _, t := range targets {
		if t.admin == "" {
			continue
		}
		done, err := t.svc.IsInitialized(ctx)
		if err != nil {
			return fmt.Errorf("bootstrap %s: %w", t.name, err)
		}
		if done {
			logger.DebugContext(ctx, "ledger already initialized", slog.String("namespace", t.name))
			continue
		}
		if err := t.svc.Initialize(ctx, domain.Address(t.admin)); err != nil {
			return fmt.Errorf("bootstrap %s: %w", t.name, err)
		}
		logger.InfoContext(ctx, "ledger bootstrapped",
			slog.String("namespace", t.name),
			slog.String("admin", t.admin),
		)
	}
	return nil
}
