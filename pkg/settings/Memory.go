package settings

import (
	"context"
	"sync"
)

type Memory struct {
	mu           sync.RWMutex
	repositories map[string]Flat
}

func NewMemory() *Memory {
	return &Memory{
		repositories: make(map[string]Flat),
	}
}

func (m *Memory) Get(ctx context.Context, repository string) (Flat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	flat, ok := m.repositories[repository]
	if !ok {
		return Flat{}, nil
	}

	return flat.Copy(), nil
}

func (m *Memory) Replace(ctx context.Context, repository string, flat Flat) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.repositories[repository] = flat.Copy()
	return nil
}
