package sizecache

import (
	"context"
	"time"

	"github.com/kailas-cloud/cardex/internal/db"
	"github.com/kailas-cloud/cardex/internal/imagesize"
)

type mockProber struct {
	size  imagesize.Size
	err   error
	calls int
}

func (m *mockProber) Probe(_ context.Context, _ string) (imagesize.Size, error) {
	m.calls++
	return m.size, m.err
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	ttls    map[string]time.Duration
	deleted []string
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mockKVStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockKVStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockKVStore) Del(_ context.Context, key string) error {
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}
