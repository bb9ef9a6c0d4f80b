package wallet

import (
	"context"
	"sync"

	"github.com/heartmarshall/campus-ledger/internal/domain"
)

var _ journal = &journalMock{}

type journalMock struct {
	AppendFunc func(ctx context.Context, inv domain.Invocation) error

	calls struct {
		Append []struct {
			Ctx context.Context
			Inv domain.Invocation
		}
	}
	lockAppend sync.RWMutex
}

func (mock *journalMock) Append(ctx context.Context, inv domain.Invocation) error {
	if mock.AppendFunc == nil {
		panic("journalMock.AppendFunc: method is nil but journal.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Inv domain.Invocation
	}{Ctx: ctx, Inv: inv}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, inv)
}

func (mock *journalMock) AppendCalls() []struct {
	Ctx context.Context
	Inv domain.Invocation
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
