package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
	"github.com/heartmarshall/querydesk-backend/internal/service/query"
)

var _ queryService = &queryServiceMock{}

type queryServiceMock struct {
	AppendNoteFunc  func(ctx context.Context, input query.AppendNoteInput) (*domain.QueryView, error)
	CreateQueryFunc func(ctx context.Context, input query.CreateQueryInput) (*domain.QueryView, error)
	DeleteNoteFunc  func(ctx context.Context, input query.DeleteNoteInput) (*domain.QueryView, error)
	DeleteQueryFunc func(ctx context.Context, id uuid.UUID) error
	EditNoteFunc    func(ctx context.Context, input query.EditNoteInput) (*domain.QueryView, error)
	GetHistoryFunc  func(ctx context.Context, queryID uuid.UUID, limit int) ([]domain.AuditRecord, error)
	GetQueryFunc    func(ctx context.Context, id uuid.UUID) (*domain.QueryView, error)
	UpdateQueryFunc func(ctx context.Context, input query.UpdateQueryInput) (*domain.QueryView, error)

	calls struct {
		AppendNote []struct {
			Ctx   context.Context
			Input query.AppendNoteInput
		}
		CreateQuery []struct {
			Ctx   context.Context
			Input query.CreateQueryInput
		}
		DeleteNote []struct {
			Ctx   context.Context
			Input query.DeleteNoteInput
		}
		DeleteQuery []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		EditNote []struct {
			Ctx   context.Context
			Input query.EditNoteInput
		}
		GetHistory []struct {
			Ctx     context.Context
			QueryID uuid.UUID
			Limit   int
		}
		GetQuery []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateQuery []struct {
			Ctx   context.Context
			Input query.UpdateQueryInput
		}
	}
	lockAppendNote  sync.RWMutex
	lockCreateQuery sync.RWMutex
	lockDeleteNote  sync.RWMutex
	lockDeleteQuery sync.RWMutex
	lockEditNote    sync.RWMutex
	lockGetHistory  sync.RWMutex
	lockGetQuery    sync.RWMutex
	lockUpdateQuery sync.RWMutex
}

func (mock *queryServiceMock) AppendNote(ctx context.Context, input query.AppendNoteInput) (*domain.QueryView, error) {
	if mock.AppendNoteFunc == nil {
		panic("queryServiceMock.AppendNoteFunc: method is nil but queryService.AppendNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input query.AppendNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockAppendNote.Lock()
	mock.calls.AppendNote = append(mock.calls.AppendNote, callInfo)
	mock.lockAppendNote.Unlock()
	return mock.AppendNoteFunc(ctx, input)
}

func (mock *queryServiceMock) AppendNoteCalls() []struct {
	Ctx   context.Context
	Input query.AppendNoteInput
} {
	mock.lockAppendNote.RLock()
	calls := mock.calls.AppendNote
	mock.lockAppendNote.RUnlock()
	return calls
}

func (mock *queryServiceMock) CreateQuery(ctx context.Context, input query.CreateQueryInput) (*domain.QueryView, error) {
	if mock.CreateQueryFunc == nil {
		panic("queryServiceMock.CreateQueryFunc: method is nil but queryService.CreateQuery was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input query.CreateQueryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateQuery.Lock()
	mock.calls.CreateQuery = append(mock.calls.CreateQuery, callInfo)
	mock.lockCreateQuery.Unlock()
	return mock.CreateQueryFunc(ctx, input)
}

func (mock *queryServiceMock) CreateQueryCalls() []struct {
	Ctx   context.Context
	Input query.CreateQueryInput
} {
	mock.lockCreateQuery.RLock()
	calls := mock.calls.CreateQuery
	mock.lockCreateQuery.RUnlock()
	return calls
}

func (mock *queryServiceMock) DeleteNote(ctx context.Context, input query.DeleteNoteInput) (*domain.QueryView, error) {
	if mock.DeleteNoteFunc == nil {
		panic("queryServiceMock.DeleteNoteFunc: method is nil but queryService.DeleteNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input query.DeleteNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteNote.Lock()
	mock.calls.DeleteNote = append(mock.calls.DeleteNote, callInfo)
	mock.lockDeleteNote.Unlock()
	return mock.DeleteNoteFunc(ctx, input)
}

func (mock *queryServiceMock) DeleteNoteCalls() []struct {
	Ctx   context.Context
	Input query.DeleteNoteInput
} {
	mock.lockDeleteNote.RLock()
	calls := mock.calls.DeleteNote
	mock.lockDeleteNote.RUnlock()
	return calls
}

func (mock *queryServiceMock) DeleteQuery(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteQueryFunc == nil {
		panic("queryServiceMock.DeleteQueryFunc: method is nil but queryService.DeleteQuery was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteQuery.Lock()
	mock.calls.DeleteQuery = append(mock.calls.DeleteQuery, callInfo)
	mock.lockDeleteQuery.Unlock()
	return mock.DeleteQueryFunc(ctx, id)
}

func (mock *queryServiceMock) DeleteQueryCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteQuery.RLock()
	calls := mock.calls.DeleteQuery
	mock.lockDeleteQuery.RUnlock()
	return calls
}

func (mock *queryServiceMock) EditNote(ctx context.Context, input query.EditNoteInput) (*domain.QueryView, error) {
	if mock.EditNoteFunc == nil {
		panic("queryServiceMock.EditNoteFunc: method is nil but queryService.EditNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input query.EditNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockEditNote.Lock()
	mock.calls.EditNote = append(mock.calls.EditNote, callInfo)
	mock.lockEditNote.Unlock()
	return mock.EditNoteFunc(ctx, input)
}

func (mock *queryServiceMock) EditNoteCalls() []struct {
	Ctx   context.Context
	Input query.EditNoteInput
} {
	mock.lockEditNote.RLock()
	calls := mock.calls.EditNote
	mock.lockEditNote.RUnlock()
	return calls
}

func (mock *queryServiceMock) GetHistory(ctx context.Context, queryID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.GetHistoryFunc == nil {
		panic("queryServiceMock.GetHistoryFunc: method is nil but queryService.GetHistory was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		QueryID uuid.UUID
		Limit   int
	}{Ctx: ctx, QueryID: queryID, Limit: limit}
	mock.lockGetHistory.Lock()
	mock.calls.GetHistory = append(mock.calls.GetHistory, callInfo)
	mock.lockGetHistory.Unlock()
	return mock.GetHistoryFunc(ctx, queryID, limit)
}

func (mock *queryServiceMock) GetHistoryCalls() []struct {
	Ctx     context.Context
	QueryID uuid.UUID
	Limit   int
} {
	mock.lockGetHistory.RLock()
	calls := mock.calls.GetHistory
	mock.lockGetHistory.RUnlock()
	return calls
}

func (mock *queryServiceMock) GetQuery(ctx context.Context, id uuid.UUID) (*domain.QueryView, error) {
	if mock.GetQueryFunc == nil {
		panic("queryServiceMock.GetQueryFunc: method is nil but queryService.GetQuery was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetQuery.Lock()
	mock.calls.GetQuery = append(mock.calls.GetQuery, callInfo)
	mock.lockGetQuery.Unlock()
	return mock.GetQueryFunc(ctx, id)
}

func (mock *queryServiceMock) GetQueryCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetQuery.RLock()
	calls := mock.calls.GetQuery
	mock.lockGetQuery.RUnlock()
	return calls
}

func (mock *queryServiceMock) UpdateQuery(ctx context.Context, input query.UpdateQueryInput) (*domain.QueryView, error) {
	if mock.UpdateQueryFunc == nil {
		panic("queryServiceMock.UpdateQueryFunc: method is nil but queryService.UpdateQuery was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input query.UpdateQueryInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateQuery.Lock()
	mock.calls.UpdateQuery = append(mock.calls.UpdateQuery, callInfo)
	mock.lockUpdateQuery.Unlock()
	return mock.UpdateQueryFunc(ctx, input)
}

func (mock *queryServiceMock) UpdateQueryCalls() []struct {
	Ctx   context.Context
	Input query.UpdateQueryInput
} {
	mock.lockUpdateQuery.RLock()
	calls := mock.calls.UpdateQuery
	mock.lockUpdateQuery.RUnlock()
	return calls
}
