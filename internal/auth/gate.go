package auth

import (
	"context"
	"fmt"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/pkg/ctxutil"
)

// Gate verifies that the invocation carried by ctx is authorized by a
// claimed identity. The transport layer authenticates the caller and stores
// its address in ctx; the gate only compares.
type Gate struct{}

// NewGate creates a Gate.
func NewGate() Gate { return Gate{} }

// Require returns domain.ErrUnauthorized unless ctx carries proof of control
// for addr. It has no side effects.
func (Gate) Require(ctx context.Context, addr domain.Address) error {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return fmt.Errorf("authorization required for %s: %w", addr, domain.ErrUnauthorized)
	}
	if domain.Address(caller) != addr {
		return fmt.Errorf("caller %s cannot act for %s: %w", caller, addr, domain.ErrUnauthorized)
	}
	return nil
}
