package wallet

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// AttendEvent adds the student to the event and credits its reward. The
// student does not have to be registered.
func (s *Service) AttendEvent(ctx context.Context, input AttendEventInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}
	if err := s.gate.Require(ctx, input.Student); err != nil {
		return 0, err
	}

	now := s.now()
	var balance int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		event, ok, err := ledger.Load[domain.Event](txCtx, s.store, eventKey(input.EventID))
		if err != nil {
			return err
		}
		switch {
		case !ok:
			return domain.ErrEventNotFound
		case !event.IsActive:
			return domain.ErrEventNotActive
		case event.HasParticipant(input.Student):
			return domain.ErrAlreadyParticipated
		case event.IsFull():
			return domain.ErrEventFull
		}

		event.Participants = append(event.Participants, input.Student)
		if err := ledger.Save(txCtx, s.store, eventKey(event.ID), event); err != nil {
			return err
		}

		current, err := s.balance(txCtx, input.Student)
		if err != nil {
			return err
		}
		balance, err = domain.AddPoints(current, event.RewardAmount)
		if err != nil {
			return err
		}
		if err := s.setBalance(txCtx, input.Student, balance); err != nil {
			return err
		}

		return s.record(txCtx, domain.OperationAttendEvent, input.Student, now, map[string]any{
			"event_id": event.ID,
			"reward":   event.RewardAmount,
		})
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "event attended",
		slog.String("event_id", input.EventID),
		slog.String("student", input.Student.String()),
		slog.Int64("balance", balance),
	)

	return balance, nil
}
