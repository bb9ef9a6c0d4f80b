package wallet

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// CreateEvent stores an active event with no participants. Only the wallet
// administrator may organize events. An event with the same id is replaced,
// participants included.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.gate.Require(ctx, input.Organizer); err != nil {
		return nil, err
	}

	now := s.now()
	var event *domain.Event
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		admin, ok, err := ledger.Load[domain.Address](txCtx, s.store, adminKey)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotInitialized
		}
		if input.Organizer != admin {
			return domain.ErrNotOrganizer
		}

		event = &domain.Event{
			ID:              input.ID,
			Name:            input.Name,
			Description:     input.Description,
			RewardAmount:    input.RewardAmount,
			Organizer:       input.Organizer,
			MaxParticipants: input.MaxParticipants,
			Participants:    []domain.Address{},
			IsActive:        true,
		}
		if err := ledger.Save(txCtx, s.store, eventKey(event.ID), event); err != nil {
			return err
		}

		return s.record(txCtx, domain.OperationCreateEvent, input.Organizer, now, map[string]any{
			"event_id":         event.ID,
			"reward_amount":    event.RewardAmount,
			"max_participants": event.MaxParticipants,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("event_id", event.ID),
		slog.Int64("reward", event.RewardAmount),
	)

	return event, nil
}
