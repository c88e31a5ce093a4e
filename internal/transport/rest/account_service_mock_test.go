package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/blog-backend/internal/service/account"
)

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	LoginFunc       func(ctx context.Context, input account.LoginInput) (string, error)
	RegisterFunc    func(ctx context.Context, input account.RegisterInput) (*account.RegisterResult, error)
	UploadImageFunc func(ctx context.Context, input account.UploadImageInput) (string, error)

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input account.LoginInput
		}
		Register []struct {
			Ctx   context.Context
			Input account.RegisterInput
		}
		UploadImage []struct {
			Ctx   context.Context
			Input account.UploadImageInput
		}
	}
	lockLogin       sync.RWMutex
	lockRegister    sync.RWMutex
	lockUploadImage sync.RWMutex
}

func (mock *accountServiceMock) Login(ctx context.Context, input account.LoginInput) (string, error) {
	if mock.LoginFunc == nil {
		panic("accountServiceMock.LoginFunc: method is nil but accountService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *accountServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input account.LoginInput
} {
	var calls []struct {
		Ctx   context.Context
		Input account.LoginInput
	}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *accountServiceMock) Register(ctx context.Context, input account.RegisterInput) (*account.RegisterResult, error) {
	if mock.RegisterFunc == nil {
		panic("accountServiceMock.RegisterFunc: method is nil but accountService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *accountServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input account.RegisterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input account.RegisterInput
	}
	mock.lockRegister.RLock()
	calls = mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *accountServiceMock) UploadImage(ctx context.Context, input account.UploadImageInput) (string, error) {
	if mock.UploadImageFunc == nil {
		panic("accountServiceMock.UploadImageFunc: method is nil but accountService.UploadImage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.UploadImageInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUploadImage.Lock()
	mock.calls.UploadImage = append(mock.calls.UploadImage, callInfo)
	mock.lockUploadImage.Unlock()
	return mock.UploadImageFunc(ctx, input)
}

func (mock *accountServiceMock) UploadImageCalls() []struct {
	Ctx   context.Context
	Input account.UploadImageInput
} {
	var calls []struct {
		Ctx   context.Context
		Input account.UploadImageInput
	}
	mock.lockUploadImage.RLock()
	calls = mock.calls.UploadImage
	mock.lockUploadImage.RUnlock()
	return calls
}
