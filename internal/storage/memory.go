package storage

import (
	"context"
	"sync"
)

// Memory is an in-memory gateway with the same contract as Store, suitable
// for tests.
type Memory struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemory returns an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{blobs: map[string][]byte{}}
}

// Load returns the blob last saved under key, or (nil, nil) when absent.
func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// Save replaces the blob stored under key.
func (m *Memory) Save(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, len(payload))
	copy(out, payload)
	m.blobs[key] = out
	return nil
}
