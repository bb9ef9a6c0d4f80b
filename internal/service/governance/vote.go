package governance

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// Vote records the caller's vote on a proposal and re-evaluates its status
// against the club roster as it stands now.
func (s *Service) Vote(ctx context.Context, input VoteInput) (*domain.Proposal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.gate.Require(ctx, input.Caller); err != nil {
		return nil, err
	}

	now := s.now()
	var (
		proposal *domain.Proposal
		before   domain.ProposalStatus
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, ok, err := ledger.Load[domain.Proposal](txCtx, s.store, proposalKey(input.ProposalID))
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrProposalNotFound
		}
		if p.VotingEnded(now) {
			return domain.ErrVotingEnded
		}

		key := voteKey(p.ID, input.Caller)
		voted, err := s.store.Has(txCtx, key)
		if err != nil {
			return err
		}
		if voted {
			return domain.ErrAlreadyVoted
		}

		club, err := s.loadClub(txCtx, p.ClubID)
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

		vote := domain.Vote{
			ProposalID: p.ID,
			Voter:      input.Caller,
			Support:    input.Support,
			CastAt:     now,
		}
		if err := ledger.Save(txCtx, s.store, key, vote); err != nil {
			return err
		}

		before = p.Status
		p.RecordVote(input.Support, club.MemberCount())
		if err := ledger.Save(txCtx, s.store, proposalKey(p.ID), p); err != nil {
			return err
		}
		proposal = &p

		return s.record(txCtx, domain.OperationVote, input.Caller, now, map[string]any{
			"proposal_id": p.ID,
			"support":     input.Support,
			"status":      p.Status.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "vote cast",
		slog.Uint64("proposal_id", uint64(proposal.ID)),
		slog.String("voter", input.Caller.String()),
		slog.Bool("support", input.Support),
	)
	if proposal.Status != before {
		s.log.InfoContext(ctx, "proposal status changed",
			slog.Uint64("proposal_id", uint64(proposal.ID)),
			slog.String("from", before.String()),
			slog.String("to", proposal.Status.String()),
		)
	}

	return proposal, nil
}
