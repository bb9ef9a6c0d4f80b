package governance

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// CreateClub registers a new club whose administrator and only member is the
// caller. Only the ledger administrator may create clubs.
func (s *Service) CreateClub(ctx context.Context, input CreateClubInput) (*domain.Club, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.gate.Require(ctx, input.Caller); err != nil {
		return nil, err
	}

	now := s.now()
	var club *domain.Club
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		admin, err := s.admin(txCtx)
		if err != nil {
			return err
		}
		if input.Caller != admin {
			return domain.ErrNotAdmin
		}

		exists, err := s.store.Has(txCtx, clubKey(input.ID))
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrClubAlreadyExists
		}

		club = &domain.Club{
			ID:          input.ID,
			Name:        input.Name,
			Description: input.Description,
			Admin:       input.Caller,
			Members:     []domain.Address{input.Caller},
			CreatedAt:   now,
		}
		if err := ledger.Save(txCtx, s.store, clubKey(club.ID), club); err != nil {
			return err
		}
		if err := ledger.Save(txCtx, s.store, memberKey(club.ID, input.Caller), true); err != nil {
			return err
		}

		count, err := ledger.LoadOr(txCtx, s.store, clubCountKey, uint32(0))
		if err != nil {
			return err
		}
		if err := ledger.Save(txCtx, s.store, clubCountKey, count+1); err != nil {
			return err
		}

		return s.record(txCtx, domain.OperationCreateClub, input.Caller, now, map[string]any{
			"club_id": club.ID,
			"name":    club.Name,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "club created",
		slog.String("club_id", club.ID),
		slog.String("admin", club.Admin.String()),
	)

	return club, nil
}
