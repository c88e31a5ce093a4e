package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/blog-backend/internal/domain"
	"github.com/heartmarshall/blog-backend/internal/service/post"
)

var _ postService = &postServiceMock{}

type postServiceMock struct {
	CreateFunc         func(ctx context.Context, input post.Input) (*domain.PostSummary, error)
	DeleteFunc         func(ctx context.Context, id int64) error
	GetFunc            func(ctx context.Context, id int64) (*domain.PostDetail, error)
	ListFunc           func(ctx context.Context, page domain.Page) (domain.PostPage, error)
	ListByCategoryFunc func(ctx context.Context, slug string, page domain.Page) (domain.PostPage, error)
	UpdateFunc         func(ctx context.Context, id int64, input post.Input) (*domain.PostSummary, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input post.Input
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		Get []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx  context.Context
			Page domain.Page
		}
		ListByCategory []struct {
			Ctx  context.Context
			Slug string
			Page domain.Page
		}
		Update []struct {
			Ctx   context.Context
			Id    int64
			Input post.Input
		}
	}
	lockCreate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockGet            sync.RWMutex
	lockList           sync.RWMutex
	lockListByCategory sync.RWMutex
	lockUpdate         sync.RWMutex
}

func (mock *postServiceMock) Create(ctx context.Context, input post.Input) (*domain.PostSummary, error) {
	if mock.CreateFunc == nil {
		panic("postServiceMock.CreateFunc: method is nil but postService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input post.Input
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *postServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input post.Input
} {
	var calls []struct {
		Ctx   context.Context
		Input post.Input
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *postServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("postServiceMock.DeleteFunc: method is nil but postService.Delete was just called")
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

func (mock *postServiceMock) DeleteCalls() []struct {
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

func (mock *postServiceMock) Get(ctx context.Context, id int64) (*domain.PostDetail, error) {
	if mock.GetFunc == nil {
		panic("postServiceMock.GetFunc: method is nil but postService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *postServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *postServiceMock) List(ctx context.Context, page domain.Page) (domain.PostPage, error) {
	if mock.ListFunc == nil {
		panic("postServiceMock.ListFunc: method is nil but postService.List was just called")
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

func (mock *postServiceMock) ListCalls() []struct {
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

func (mock *postServiceMock) ListByCategory(ctx context.Context, slug string, page domain.Page) (domain.PostPage, error) {
	if mock.ListByCategoryFunc == nil {
		panic("postServiceMock.ListByCategoryFunc: method is nil but postService.ListByCategory was just called")
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
	mock.lockListByCategory.Lock()
	mock.calls.ListByCategory = append(mock.calls.ListByCategory, callInfo)
	mock.lockListByCategory.Unlock()
	return mock.ListByCategoryFunc(ctx, slug, page)
}

func (mock *postServiceMock) ListByCategoryCalls() []struct {
	Ctx  context.Context
	Slug string
	Page domain.Page
} {
	var calls []struct {
		Ctx  context.Context
		Slug string
		Page domain.Page
	}
	mock.lockListByCategory.RLock()
	calls = mock.calls.ListByCategory
	mock.lockListByCategory.RUnlock()
	return calls
}

func (mock *postServiceMock) Update(ctx context.Context, id int64, input post.Input) (*domain.PostSummary, error) {
	if mock.UpdateFunc == nil {
		panic("postServiceMock.UpdateFunc: method is nil but postService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Input post.Input
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *postServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    int64
	Input post.Input
} {
	var calls []struct {
		Ctx   context.Context
		Id    int64
		Input post.Input
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
