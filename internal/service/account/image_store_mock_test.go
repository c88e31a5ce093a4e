package account

import (
	"context"
	"sync"
)

var _ imageStore = &imageStoreMock{}

type imageStoreMock struct {
	SaveFunc func(ctx context.Context, name string, data []byte) error

	calls struct {
		Save []struct {
			Ctx  context.Context
			Name string
			Data []byte
		}
	}
	lockSave sync.RWMutex
}

func (mock *imageStoreMock) Save(ctx context.Context, name string, data []byte) error {
	if mock.SaveFunc == nil {
		panic("imageStoreMock.SaveFunc: method is nil but imageStore.Save was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Data []byte
	}{
		Ctx:  ctx,
		Name: name,
		Data: data,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, name, data)
}

func (mock *imageStoreMock) SaveCalls() []struct {
	Ctx  context.Context
	Name string
	Data []byte
} {
	var calls []struct {
		Ctx  context.Context
		Name string
		Data []byte
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
