package wallet

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-ledger/internal/domain"
)

// Transfer moves amount points from the sender to the recipient. A transfer
// to oneself succeeds and leaves the balance unchanged.
func (s *Service) Transfer(ctx context.Context, input TransferInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if err := s.gate.Require(ctx, input.From); err != nil {
		return err
	}
	if input.Amount <= 0 {
		return domain.ErrInvalidAmount
	}

	now := s.now()
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		fromBalance, err := s.balance(txCtx, input.From)
		if err != nil {
			return err
		}
		if fromBalance < input.Amount {
			return domain.ErrInsufficientBalance
		}

		if input.From != input.To {
			toBalance, err := s.balance(txCtx, input.To)
			if err != nil {
				return err
			}
			credited, err := domain.AddPoints(toBalance, input.Amount)
			if err != nil {
				return err
			}
			if err := s.setBalance(txCtx, input.From, fromBalance-input.Amount); err != nil {
				return err
			}
			if err := s.setBalance(txCtx, input.To, credited); err != nil {
				return err
			}
		}

		return s.record(txCtx, domain.OperationTransfer, input.From, now, map[string]any{
			"to":     input.To.String(),
			"amount": input.Amount,
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "points transferred",
		slog.String("from", input.From.String()),
		slog.String("to", input.To.String()),
		slog.Int64("amount", input.Amount),
	)

	return nil
}
