package governance

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// CreateProposal raises a proposal in a club the caller belongs to. Proposal
// ids start at 1 and are never reused.
func (s *Service) CreateProposal(ctx context.Context, input CreateProposalInput) (*domain.Proposal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.gate.Require(ctx, input.Caller); err != nil {
		return nil, err
	}

	now := s.now()
	end, ok := domain.VotingEnd(now, input.DurationDays)
	if !ok {
		return nil, domain.NewValidationError("duration_days", "too large")
	}

	var proposal *domain.Proposal
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		club, err := s.loadClub(txCtx, input.ClubID)
		if err != nil {
			return err
		}
		member, err := s.isMember(txCtx, club.ID, input.Caller)
		if err != nil {
			return err
		}
		if !member {
			return domain.ErrNotMember
		}

		last, err := ledger.LoadOr(txCtx, s.store, proposalCountKey, uint32(0))
		if err != nil {
			return err
		}
		id := last + 1

		proposal = &domain.Proposal{
			ID:          id,
			ClubID:      club.ID,
			Title:       input.Title,
			Description: input.Description,
			Creator:     input.Caller,
			Amount:      input.Amount,
			Recipient:   input.Recipient,
			Status:      domain.ProposalStatusActive,
			CreatedAt:   now,
			EndTime:     end,
		}
		if err := ledger.Save(txCtx, s.store, proposalKey(id), proposal); err != nil {
			return err
		}
		if err := ledger.Save(txCtx, s.store, proposalCountKey, id); err != nil {
			return err
		}

		return s.record(txCtx, domain.OperationCreateProposal, input.Caller, now, map[string]any{
			"proposal_id": id,
			"club_id":     club.ID,
			"end_time":    proposal.EndTime,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "proposal created",
		slog.Uint64("proposal_id", uint64(proposal.ID)),
		slog.String("club_id", proposal.ClubID),
		slog.Uint64("end_time", proposal.EndTime),
	)

	return proposal, nil
}
