package secrets

import "sync"

type memoryKey struct {
	account       string
	accessGroup   string
	accessibility Accessibility
}

func keyOf(q Query) memoryKey {
	return memoryKey{
		account:       q.Account,
		accessGroup:   q.AccessGroup,
		accessibility: q.Accessibility.Resolve(),
	}
}

// InMemorySecretStore keeps entries in a map for the life of the process.
// Scopes match exactly: an entry stored without an access group is not
// visible to queries that name one, and the other way round.
type InMemorySecretStore struct {
	mu      sync.RWMutex
	entries map[memoryKey][]byte
}

func NewInMemorySecretStore() *InMemorySecretStore {
	return &InMemorySecretStore{
		entries: make(map[memoryKey][]byte),
	}
}

func (m *InMemorySecretStore) Insert(item Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := keyOf(item.Query)
	if _, ok := m.entries[k]; ok {
		return NewStatusError(StatusDuplicateItem)
	}
	m.entries[k] = clone(item.Data)
	return nil
}

func (m *InMemorySecretStore) Query(q Query) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.entries[keyOf(q)]
	if !ok {
		return nil, NewStatusError(StatusItemNotFound)
	}
	return clone(data), nil
}

func (m *InMemorySecretStore) Update(q Query, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := keyOf(q)
	if _, ok := m.entries[k]; !ok {
		return NewStatusError(StatusItemNotFound)
	}
	m.entries[k] = clone(data)
	return nil
}

func (m *InMemorySecretStore) Delete(q Query) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := keyOf(q)
	if _, ok := m.entries[k]; !ok {
		return NewStatusError(StatusItemNotFound)
	}
	delete(m.entries, k)
	return nil
}

func (m *InMemorySecretStore) DeleteAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return NewStatusError(StatusItemNotFound)
	}
	m.entries = make(map[memoryKey][]byte)
	return nil
}

// Len returns the number of stored entries.
func (m *InMemorySecretStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func clone(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
