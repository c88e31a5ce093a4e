package account

import (
	"context"
	"sync"

	"github.com/heartmarshall/blog-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	AssignRoleFunc  func(ctx context.Context, userID int64, roleSlug string) error
	CreateFunc      func(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	UpdateImageFunc func(ctx context.Context, email string, imageURL string) error

	calls struct {
		AssignRole []struct {
			Ctx      context.Context
			UserID   int64
			RoleSlug string
		}
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		UpdateImage []struct {
			Ctx      context.Context
			Email    string
			ImageURL string
		}
	}
	lockAssignRole  sync.RWMutex
	lockCreate      sync.RWMutex
	lockGetByEmail  sync.RWMutex
	lockUpdateImage sync.RWMutex
}

func (mock *userRepoMock) AssignRole(ctx context.Context, userID int64, roleSlug string) error {
	if mock.AssignRoleFunc == nil {
		panic("userRepoMock.AssignRoleFunc: method is nil but userRepo.AssignRole was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		RoleSlug string
	}{
		Ctx:      ctx,
		UserID:   userID,
		RoleSlug: roleSlug,
	}
	mock.lockAssignRole.Lock()
	mock.calls.AssignRole = append(mock.calls.AssignRole, callInfo)
	mock.lockAssignRole.Unlock()
	return mock.AssignRoleFunc(ctx, userID, roleSlug)
}

func (mock *userRepoMock) AssignRoleCalls() []struct {
	Ctx      context.Context
	UserID   int64
	RoleSlug string
} {
	var calls []struct {
		Ctx      context.Context
		UserID   int64
		RoleSlug string
	}
	mock.lockAssignRole.RLock()
	calls = mock.calls.AssignRole
	mock.lockAssignRole.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   *domain.User
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
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

func (mock *userRepoMock) GetByEmailCalls() []struct {
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

func (mock *userRepoMock) UpdateImage(ctx context.Context, email string, imageURL string) error {
	if mock.UpdateImageFunc == nil {
		panic("userRepoMock.UpdateImageFunc: method is nil but userRepo.UpdateImage was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Email    string
		ImageURL string
	}{
		Ctx:      ctx,
		Email:    email,
		ImageURL: imageURL,
	}
	mock.lockUpdateImage.Lock()
	mock.calls.UpdateImage = append(mock.calls.UpdateImage, callInfo)
	mock.lockUpdateImage.Unlock()
	return mock.UpdateImageFunc(ctx, email, imageURL)
}

func (mock *userRepoMock) UpdateImageCalls() []struct {
	Ctx      context.Context
	Email    string
	ImageURL string
} {
	var calls []struct {
		Ctx      context.Context
		Email    string
		ImageURL string
	}
	mock.lockUpdateImage.RLock()
	calls = mock.calls.UpdateImage
	mock.lockUpdateImage.RUnlock()
	return calls
}
