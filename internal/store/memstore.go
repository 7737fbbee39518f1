package store

import "sync"

// MemStore is an in-memory Store for tests and for runs without a DB.
type MemStore struct {
	mu       sync.Mutex
	attempts []*Attempt
	nextID   int64
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{nextID: 1}
}

// SaveAttempt implements Store.
func (m *MemStore) SaveAttempt(a *Attempt) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	cp.ID = m.nextID
	cp.CreatedAt = nowUTC()
	m.nextID++
	m.attempts = append(m.attempts, &cp)
	a.ID = cp.ID
	a.CreatedAt = cp.CreatedAt
	return cp.ID, nil
}

// ListAttempts implements Store.
func (m *MemStore) ListAttempts(setName string) ([]*Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Attempt
	for i := len(m.attempts) - 1; i >= 0; i-- {
		a := m.attempts[i]
		if setName == "" || a.SetName == setName {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Close implements Store.
func (m *MemStore) Close() error { return nil }
