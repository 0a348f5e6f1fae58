package storage

import (
	"context"
	"sync"
)

// Memory is an in-process Backend used by tests and embedders that do not
// want a database file. Save failures can be injected per key to exercise
// the partial-write paths.
type Memory struct {
	mu      sync.RWMutex
	data    map[string][]byte
	saveErr map[string]error
}

func NewMemory() *Memory {
	return &Memory{
		data:    make(map[string][]byte),
		saveErr: make(map[string]error),
	}
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *Memory) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.saveErr[key]; err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// FailSave makes every subsequent Save on key fail with err. A nil err
// clears the injected failure.
func (m *Memory) FailSave(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.saveErr, key)
		return
	}
	m.saveErr[key] = err
}
