package governance

import (
	"context"
	"sync"

	"github.com/heartmarshall/campus-ledger/internal/domain"
)

var _ authGate = &authGateMock{}

type authGateMock struct {
	RequireFunc func(ctx context.Context, addr domain.Address) error

	calls struct {
		Require []struct {
			Ctx  context.Context
			Addr domain.Address
		}
	}
	lockRequire sync.RWMutex
}

func (mock *authGateMock) Require(ctx context.Context, addr domain.Address) error {
	if mock.RequireFunc == nil {
		panic("authGateMock.RequireFunc: method is nil but authGate.Require was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Addr domain.Address
	}{Ctx: ctx, Addr: addr}
	mock.lockRequire.Lock()
	mock.calls.Require = append(mock.calls.Require, callInfo)
	mock.lockRequire.Unlock()
	return mock.RequireFunc(ctx, addr)
}

func (mock *authGateMock) RequireCalls() []struct {
	Ctx  context.Context
	Addr domain.Address
} {
	mock.lockRequire.RLock()
	calls := mock.calls.Require
	mock.lockRequire.RUnlock()
	return calls
}
