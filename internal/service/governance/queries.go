package governance

import (
	"context"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// GetProposal returns the proposal with id, or nil if none exists.
func (s *Service) GetProposal(ctx context.Context, id uint32) (*domain.Proposal, error) {
	p, ok, err := ledger.Load[domain.Proposal](ctx, s.store, proposalKey(id))
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// GetClub returns the club with id, or nil if none exists.
func (s *Service) GetClub(ctx context.Context, id string) (*domain.Club, error) {
	club, ok, err := ledger.Load[domain.Club](ctx, s.store, clubKey(id))
	if err != nil || !ok {
		return nil, err
	}
	return &club, nil
}

// ClubCount returns the number of clubs created since initialization.
func (s *Service) ClubCount(ctx context.Context) (uint32, error) {
	return ledger.LoadOr(ctx, s.store, clubCountKey, uint32(0))
}

// IsInitialized reports whether an administrator has been recorded.
func (s *Service) IsInitialized(ctx context.Context) (bool, error) {
	return s.store.Has(ctx, adminKey)
}
