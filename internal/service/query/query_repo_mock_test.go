package query

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

var _ queryRepo = &queryRepoMock{}

type queryRepoMock struct {
	CreateFunc           func(ctx context.Context, q domain.Query) (domain.Query, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (domain.Query, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (domain.Query, error)
	ListFunc             func(ctx context.Context, limit int, offset int) ([]domain.Query, int, error)
	SaveFunc             func(ctx context.Context, q domain.Query) (domain.Query, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Q   domain.Query
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Save []struct {
			Ctx context.Context
			Q   domain.Query
		}
	}
	lockCreate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockSave             sync.RWMutex
}

func (mock *queryRepoMock) Create(ctx context.Context, q domain.Query) (domain.Query, error) {
	if mock.CreateFunc == nil {
		panic("queryRepoMock.CreateFunc: method is nil but queryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.Query
	}{Ctx: ctx, Q: q}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, q)
}

func (mock *queryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Q   domain.Query
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *queryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("queryRepoMock.DeleteFunc: method is nil but queryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *queryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *queryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Query, error) {
	if mock.GetByIDFunc == nil {
		panic("queryRepoMock.GetByIDFunc: method is nil but queryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *queryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *queryRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Query, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("queryRepoMock.GetByIDForUpdateFunc: method is nil but queryRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *queryRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *queryRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.Query, int, error) {
	if mock.ListFunc == nil {
		panic("queryRepoMock.ListFunc: method is nil but queryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *queryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *queryRepoMock) Save(ctx context.Context, q domain.Query) (domain.Query, error) {
	if mock.SaveFunc == nil {
		panic("queryRepoMock.SaveFunc: method is nil but queryRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.Query
	}{Ctx: ctx, Q: q}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, q)
}

func (mock *queryRepoMock) SaveCalls() []struct {
	Ctx context.Context
	Q   domain.Query
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
