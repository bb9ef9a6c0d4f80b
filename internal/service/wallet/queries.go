package wallet

import (
	"context"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// GetBalance returns the point balance of addr, 0 if it never held any.
func (s *Service) GetBalance(ctx context.Context, addr domain.Address) (int64, error) {
	return s.balance(ctx, addr)
}

// GetStudent returns the registered student at addr, or nil.
func (s *Service) GetStudent(ctx context.Context, addr domain.Address) (*domain.Student, error) {
	student, ok, err := ledger.Load[domain.Student](ctx, s.store, studentKey(addr))
	if err != nil || !ok {
		return nil, err
	}
	return &student, nil
}

// IsInitialized reports whether an administrator has been recorded.
func (s *Service) IsInitialized(ctx context.Context) (bool, error) {
	return s.store.Has(ctx, adminKey)
}
