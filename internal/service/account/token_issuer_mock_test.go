package account

import (
	"sync"

	"github.com/heartmarshall/blog-backend/internal/auth"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	IssueFunc func(id auth.Identity) (string, error)

	calls struct {
		Issue []struct {
			Id auth.Identity
		}
	}
	lockIssue sync.RWMutex
}

func (mock *tokenIssuerMock) Issue(id auth.Identity) (string, error) {
	if mock.IssueFunc == nil {
		panic("tokenIssuerMock.IssueFunc: method is nil but tokenIssuer.Issue was just called")
	}
	callInfo := struct {
		Id auth.Identity
	}{
		Id: id,
	}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(id)
}

func (mock *tokenIssuerMock) IssueCalls() []struct {
	Id auth.Identity
} {
	var calls []struct {
		Id auth.Identity
	}
	mock.lockIssue.RLock()
	calls = mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}
