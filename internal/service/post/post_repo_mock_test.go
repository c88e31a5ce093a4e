package post

import (
	"context"
	"sync"

	"github.com/heartmarshall/blog-backend/internal/domain"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	CreateFunc             func(ctx context.Context, p domain.Post) (*domain.Post, error)
	DeleteFunc             func(ctx context.Context, id int64) error
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.Post, error)
	GetDetailFunc          func(ctx context.Context, id int64) (*domain.PostDetail, error)
	ListFunc               func(ctx context.Context, page domain.Page) (domain.PostPage, error)
	ListByCategorySlugFunc func(ctx context.Context, slug string, page domain.Page) (domain.PostPage, error)
	UpdateFunc             func(ctx context.Context, p domain.Post) (*domain.Post, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Post
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetDetail []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx  context.Context
			Page domain.Page
		}
		ListByCategorySlug []struct {
			Ctx  context.Context
			Slug string
			Page domain.Page
		}
		Update []struct {
			Ctx context.Context
			P   domain.Post
		}
	}
	lockCreate             sync.RWMutex
	lockDelete             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockGetDetail          sync.RWMutex
	lockList               sync.RWMutex
	lockListByCategorySlug sync.RWMutex
	lockUpdate             sync.RWMutex
}

func (mock *postRepoMock) Create(ctx context.Context, p domain.Post) (*domain.Post, error) {
	if mock.CreateFunc == nil {
		panic("postRepoMock.CreateFunc: method is nil but postRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Post
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *postRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Post
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Post
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *postRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("postRepoMock.DeleteFunc: method is nil but postRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *postRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *postRepoMock) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if mock.GetByIDFunc == nil {
		panic("postRepoMock.GetByIDFunc: method is nil but postRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *postRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *postRepoMock) GetDetail(ctx context.Context, id int64) (*domain.PostDetail, error) {
	if mock.GetDetailFunc == nil {
		panic("postRepoMock.GetDetailFunc: method is nil but postRepo.GetDetail was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetDetail.Lock()
	mock.calls.GetDetail = append(mock.calls.GetDetail, callInfo)
	mock.lockGetDetail.Unlock()
	return mock.GetDetailFunc(ctx, id)
}

func (mock *postRepoMock) GetDetailCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetDetail.RLock()
	calls = mock.calls.GetDetail
	mock.lockGetDetail.RUnlock()
	return calls
}

func (mock *postRepoMock) List(ctx context.Context, page domain.Page) (domain.PostPage, error) {
	if mock.ListFunc == nil {
		panic("postRepoMock.ListFunc: method is nil but postRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{
		Ctx:  ctx,
		Page: page,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, page)
}

func (mock *postRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	var calls []struct {
		Ctx  context.Context
		Page domain.Page
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *postRepoMock) ListByCategorySlug(ctx context.Context, slug string, page domain.Page) (domain.PostPage, error) {
	if mock.ListByCategorySlugFunc == nil {
		panic("postRepoMock.ListByCategorySlugFunc: method is nil but postRepo.ListByCategorySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
		Page domain.Page
	}{
		Ctx:  ctx,
		Slug: slug,
		Page: page,
	}
	mock.lockListByCategorySlug.Lock()
	mock.calls.ListByCategorySlug = append(mock.calls.ListByCategorySlug, callInfo)
	mock.lockListByCategorySlug.Unlock()
	return mock.ListByCategorySlugFunc(ctx, slug, page)
}

func (mock *postRepoMock) ListByCategorySlugCalls() []struct {
	Ctx  context.Context
	Slug string
	Page domain.Page
} {
	var calls []struct {
		Ctx  context.Context
		Slug string
		Page domain.Page
	}
	mock.lockListByCategorySlug.RLock()
	calls = mock.calls.ListByCategorySlug
	mock.lockListByCategorySlug.RUnlock()
	return calls
}

func (mock *postRepoMock) Update(ctx context.Context, p domain.Post) (*domain.Post, error) {
	if mock.UpdateFunc == nil {
		panic("postRepoMock.UpdateFunc: method is nil but postRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Post
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *postRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   domain.Post
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Post
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
