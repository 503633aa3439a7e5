package slugstore

import (
	"context"
	"sync"
)

type memoryKey struct {
	table  string
	column string
	slug   string
}

// Memory is an in-process slug registry.
// Safe for concurrent use. Contents are lost on restart.
type Memory struct {
	mu    sync.RWMutex
	slugs map[memoryKey]string
}

// NewMemory creates an empty registry.
func NewMemory() *Memory {
	return &Memory{slugs: make(map[memoryKey]string)}
}

// Exists implements slug.ExistenceChecker.
func (m *Memory) Exists(_ context.Context, table, column, candidate string, excludeKey any) (bool, error) {
	if err := validIdentifiers(table, column); err != nil {
		return false, err
	}

	m.mu.RLock()
	owner, ok := m.slugs[memoryKey{table, column, candidate}]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if excludeKey != nil && owner == keyString(excludeKey) {
		return false, nil
	}
	return true, nil
}

// Claim stores slug for key unless another key already owns it.
// Claiming a slug the key already owns succeeds.
func (m *Memory) Claim(_ context.Context, table, column, slug string, key any) (bool, error) {
	if err := validIdentifiers(table, column); err != nil {
		return false, err
	}

	k := memoryKey{table, column, slug}
	owner := keyString(key)

	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.slugs[k]; ok {
		return current == owner, nil
	}
	m.slugs[k] = owner
	return true, nil
}

// Put stores slug for key, replacing any previous owner.
func (m *Memory) Put(table, column, slug string, key any) {
	m.mu.Lock()
	m.slugs[memoryKey{table, column, slug}] = keyString(key)
	m.mu.Unlock()
}

// Release removes slug from the registry.
func (m *Memory) Release(_ context.Context, table, column, slug string) error {
	if err := validIdentifiers(table, column); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.slugs, memoryKey{table, column, slug})
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored slugs.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.slugs)
}
