package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/querydesk-backend/internal/service/assistant"
)

var _ assistantService = &assistantServiceMock{}

type assistantServiceMock struct {
	AskFunc func(ctx context.Context, input assistant.AskInput) (string, error)

	calls struct {
		Ask []struct {
			Ctx   context.Context
			Input assistant.AskInput
		}
	}
	lockAsk sync.RWMutex
}

func (mock *assistantServiceMock) Ask(ctx context.Context, input assistant.AskInput) (string, error) {
	if mock.AskFunc == nil {
		panic("assistantServiceMock.AskFunc: method is nil but assistantService.Ask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input assistant.AskInput
	}{Ctx: ctx, Input: input}
	mock.lockAsk.Lock()
	mock.calls.Ask = append(mock.calls.Ask, callInfo)
	mock.lockAsk.Unlock()
	return mock.AskFunc(ctx, input)
}

func (mock *assistantServiceMock) AskCalls() []struct {
	Ctx   context.Context
	Input assistant.AskInput
} {
	mock.lockAsk.RLock()
	calls := mock.calls.Ask
	mock.lockAsk.RUnlock()
	return calls
}
