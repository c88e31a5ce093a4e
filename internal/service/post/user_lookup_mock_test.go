package post

import (
	"context"
	"sync"

	"github.com/heartmarshall/blog-backend/internal/domain"
)

var _ userLookup = &userLookupMock{}

type userLookupMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockGetByEmail sync.RWMutex
}

func (mock *userLookupMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userLookupMock.GetByEmailFunc: method is nil but userLookup.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userLookupMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}
