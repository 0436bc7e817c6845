package journal

import (
	"context"
	"sync"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	ReadAllFunc func(ctx context.Context) ([]domain.Record, error)
	AppendFunc  func(ctx context.Context, record domain.Record) error

	calls struct {
		ReadAll []struct{}
		Append  []struct {
			Record domain.Record
		}
	}
	lockReadAll sync.RWMutex
	lockAppend  sync.RWMutex
}

func (mock *recordStoreMock) ReadAll(ctx context.Context) ([]domain.Record, error) {
	mock.lockReadAll.Lock()
	mock.calls.ReadAll = append(mock.calls.ReadAll, struct{}{})
	mock.lockReadAll.Unlock()
	return mock.ReadAllFunc(ctx)
}

func (mock *recordStoreMock) ReadAllCalls() []struct{} {
	mock.lockReadAll.RLock()
	defer mock.lockReadAll.RUnlock()
	return mock.calls.ReadAll
}

func (mock *recordStoreMock) Append(ctx context.Context, record domain.Record) error {
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, struct {
		Record domain.Record
	}{Record: record})
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, record)
}

func (mock *recordStoreMock) AppendCalls() []struct {
	Record domain.Record
} {
	mock.lockAppend.RLock()
	defer mock.lockAppend.RUnlock()
	return mock.calls.Append
}
