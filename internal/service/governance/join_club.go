package governance

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// JoinClub appends the caller to the club's member list.
func (s *Service) JoinClub(ctx context.Context, input JoinClubInput) (*domain.Club, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.gate.Require(ctx, input.Caller); err != nil {
		return nil, err
	}

	now := s.now()
	var club *domain.Club
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		club, err = s.loadClub(txCtx, input.ClubID)
		if err != nil {
			return err
		}

		member, err := s.isMember(txCtx, club.ID, input.Caller)
		if err != nil {
			return err
		}
		if member {
			return domain.ErrAlreadyMember
		}

		club.Members = append(club.Members, input.Caller)
		if err := ledger.Save(txCtx, s.store, clubKey(club.ID), club); err != nil {
			return err
		}
		if err := ledger.Save(txCtx, s.store, memberKey(club.ID, input.Caller), true); err != nil {
			return err
		}

		return s.record(txCtx, domain.OperationJoinClub, input.Caller, now, map[string]any{
			"club_id": club.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "club joined",
		slog.String("club_id", club.ID),
		slog.String("member", input.Caller.String()),
		slog.Int("members", club.MemberCount()),
	)

	return club, nil
}
