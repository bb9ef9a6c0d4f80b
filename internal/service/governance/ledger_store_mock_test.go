package governance

import (
	"context"
	"sync"

	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

var _ ledgerStore = &ledgerStoreMock{}

type ledgerStoreMock struct {
	GetFunc func(ctx context.Context, key ledger.Key) ([]byte, bool, error)
	SetFunc func(ctx context.Context, key ledger.Key, value []byte) error
	HasFunc func(ctx context.Context, key ledger.Key) (bool, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			Key ledger.Key
		}
		Set []struct {
			Ctx   context.Context
			Key   ledger.Key
			Value []byte
		}
		Has []struct {
			Ctx context.Context
			Key ledger.Key
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
	lockHas sync.RWMutex
}

func (mock *ledgerStoreMock) Get(ctx context.Context, key ledger.Key) ([]byte, bool, error) {
	if mock.GetFunc == nil {
		panic("ledgerStoreMock.GetFunc: method is nil but ledgerStore.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key ledger.Key
	}{Ctx: ctx, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *ledgerStoreMock) GetCalls() []struct {
	Ctx context.Context
	Key ledger.Key
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *ledgerStoreMock) Set(ctx context.Context, key ledger.Key, value []byte) error {
	if mock.SetFunc == nil {
		panic("ledgerStoreMock.SetFunc: method is nil but ledgerStore.Set was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Key   ledger.Key
		Value []byte
	}{Ctx: ctx, Key: key, Value: value}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, value)
}

func (mock *ledgerStoreMock) SetCalls() []struct {
	Ctx   context.Context
	Key   ledger.Key
	Value []byte
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *ledgerStoreMock) Has(ctx context.Context, key ledger.Key) (bool, error) {
	if mock.HasFunc == nil {
		panic("ledgerStoreMock.HasFunc: method is nil but ledgerStore.Has was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key ledger.Key
	}{Ctx: ctx, Key: key}
	mock.lockHas.Lock()
	mock.calls.Has = append(mock.calls.Has, callInfo)
	mock.lockHas.Unlock()
	return mock.HasFunc(ctx, key)
}

func (mock *ledgerStoreMock) HasCalls() []struct {
	Ctx context.Context
	Key ledger.Key
} {
	mock.lockHas.RLock()
	calls := mock.calls.Has
	mock.lockHas.RUnlock()
	return calls
}
