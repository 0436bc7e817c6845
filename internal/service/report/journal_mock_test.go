package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/mindlog-backend/internal/service/journal"
)

// historyProviderMock is a hand-rolled mock of the historyProvider
// interface in the style of moq-generated code.
type historyProviderMock struct {
	HistoryFunc func(ctx context.Context) (journal.History, error)

	calls struct {
		History []struct {
			Ctx context.Context
		}
	}
	lockHistory sync.RWMutex
}

func (m *historyProviderMock) History(ctx context.Context) (journal.History, error) {
	if m.HistoryFunc == nil {
		panic("historyProviderMock.HistoryFunc: method is nil but was just called")
	}
	call := struct {
		Ctx context.Context
	}{ctx}
	m.lockHistory.Lock()
	m.calls.History = append(m.calls.History, call)
	m.lockHistory.Unlock()
	return m.HistoryFunc(ctx)
}

func (m *historyProviderMock) HistoryCalls() []struct {
	Ctx context.Context
} {
	m.lockHistory.RLock()
	defer m.lockHistory.RUnlock()
	return m.calls.History
}
