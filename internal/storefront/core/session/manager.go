package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager is the process-wide session registry, keyed by session ID.
// Sessions are never evicted: they are small and live only as long as the
// process. TODO: add an idle TTL sweep if the gateway is ever exposed beyond
// a single household of users.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Get returns the session for id, if it exists.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// GetOrCreate returns the session for id, minting a fresh one (with a new
// ID) when id is empty or unknown. Callers detect the mint by comparing IDs.
func (m *Manager) GetOrCreate(id string) *Session {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s
		}
	}

	s := &Session{ID: uuid.NewString()}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}
