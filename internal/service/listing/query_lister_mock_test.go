package listing

import (
	"context"
	"sync"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
	"github.com/heartmarshall/querydesk-backend/internal/service/query"
)

var _ queryLister = &queryListerMock{}

type queryListerMock struct {
	ListQueriesFunc func(ctx context.Context, input query.ListQueriesInput) (*domain.QueryPage, error)

	calls struct {
		ListQueries []struct {
			Ctx   context.Context
			Input query.ListQueriesInput
		}
	}
	lockListQueries sync.RWMutex
}

func (mock *queryListerMock) ListQueries(ctx context.Context, input query.ListQueriesInput) (*domain.QueryPage, error) {
	if mock.ListQueriesFunc == nil {
		panic("queryListerMock.ListQueriesFunc: method is nil but queryLister.ListQueries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input query.ListQueriesInput
	}{Ctx: ctx, Input: input}
	mock.lockListQueries.Lock()
	mock.calls.ListQueries = append(mock.calls.ListQueries, callInfo)
	mock.lockListQueries.Unlock()
	return mock.ListQueriesFunc(ctx, input)
}

func (mock *queryListerMock) ListQueriesCalls() []struct {
	Ctx   context.Context
	Input query.ListQueriesInput
} {
	mock.lockListQueries.RLock()
	calls := mock.calls.ListQueries
	mock.lockListQueries.RUnlock()
	return calls
}
