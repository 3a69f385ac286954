package session

import (
	"context"
	"errors"
	"sync"

	"pacientes-service/internal/app/contracts"
)

// fakeStore is an in-memory SessionStore for unit tests. Individual
// operations can be forced to fail to exercise the degrade paths.
type fakeStore struct {
	mu   sync.Mutex
	data map[string]string

	failGet    bool
	failSet    bool
	failDelete bool

	setCalls    int
	deleteCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return "", errors.New("storage unavailable")
	}
	value, ok := f.data[key]
	if !ok {
		return "", contracts.ErrKeyNotFound
	}
	return value, nil
}

func (f *fakeStore) Set(ctx context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.failSet {
		return errors.New("storage unavailable")
	}
	f.data[key] = value
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.failDelete {
		return errors.New("storage unavailable")
	}
	delete(f.data, key)
	return nil
}

func (f *fakeStore) raw(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.data[key]
	return value, ok
}

func (f *fakeStore) put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}
