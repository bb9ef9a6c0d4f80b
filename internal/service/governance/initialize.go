package governance

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// Initialize records admin as the administrator and zeroes both counters.
// A second call overwrites the administrator and resets the counters; running
// it once is the operator's responsibility.
func (s *Service) Initialize(ctx context.Context, admin domain.Address) error {
	if admin.IsZero() {
		return domain.NewValidationError("admin", "required")
	}

	now := s.now()
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := ledger.Save(txCtx, s.store, adminKey, admin); err != nil {
			return err
		}
		if err := ledger.Save(txCtx, s.store, clubCountKey, uint32(0)); err != nil {
			return err
		}
		if err := ledger.Save(txCtx, s.store, proposalCountKey, uint32(0)); err != nil {
			return err
		}
		return s.record(txCtx, domain.OperationInitialize, admin, now, nil)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "governance initialized", slog.String("admin", admin.String()))
	return nil
}
