package account

import (
	"sync"
)

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc   func(plaintext string) (string, error)
	VerifyFunc func(hash string, plaintext string) bool

	calls struct {
		Hash []struct {
			Plaintext string
		}
		Verify []struct {
			Hash      string
			Plaintext string
		}
	}
	lockHash   sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *passwordHasherMock) Hash(plaintext string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	callInfo := struct {
		Plaintext string
	}{
		Plaintext: plaintext,
	}
	mock.lockHash.Lock()
	mock.calls.Hash = append(mock.calls.Hash, callInfo)
	mock.lockHash.Unlock()
	return mock.HashFunc(plaintext)
}

func (mock *passwordHasherMock) HashCalls() []struct {
	Plaintext string
} {
	var calls []struct {
		Plaintext string
	}
	mock.lockHash.RLock()
	calls = mock.calls.Hash
	mock.lockHash.RUnlock()
	return calls
}

func (mock *passwordHasherMock) Verify(hash string, plaintext string) bool {
	if mock.VerifyFunc == nil {
		panic("passwordHasherMock.VerifyFunc: method is nil but passwordHasher.Verify was just called")
	}
	callInfo := struct {
		Hash      string
		Plaintext string
	}{
		Hash:      hash,
		Plaintext: plaintext,
	}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(hash, plaintext)
}

func (mock *passwordHasherMock) VerifyCalls() []struct {
	Hash      string
	Plaintext string
} {
	var calls []struct {
		Hash      string
		Plaintext string
	}
	mock.lockVerify.RLock()
	calls = mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
