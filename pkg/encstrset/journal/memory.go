package journal

import "sync"

// MemoryJournal is an in-memory journal.
// Data is lost when the process exits.
type MemoryJournal struct {
	mu     sync.RWMutex
	data   map[string][]Entry // storeID -> entries in sequence order
	closed bool
}

// NewMemoryJournal creates a new in-memory journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{
		data: make(map[string][]Entry),
	}
}

// Append implements Journal.
func (m *MemoryJournal) Append(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	entries := m.data[e.StoreID]
	e.Sequence = len(entries) + 1
	m.data[e.StoreID] = append(entries, e)
	return nil
}

// List implements Journal.
func (m *MemoryJournal) List(storeID string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}

	entries := m.data[storeID]
	if len(entries) == 0 {
		return nil, nil
	}

	// Return a copy to prevent modification
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Count implements Journal.
func (m *MemoryJournal) Count(storeID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return 0, ErrClosed
	}
	return len(m.data[storeID]), nil
}

// DeleteStore implements Journal.
func (m *MemoryJournal) DeleteStore(storeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	delete(m.data, storeID)
	return nil
}

// Close implements Journal.
func (m *MemoryJournal) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}
