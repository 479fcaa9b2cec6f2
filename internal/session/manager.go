package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/renalplate/backend/internal/model"
	"github.com/renalplate/backend/internal/service"
)

// Manager owns the working selections, one per session. The selection is an
// explicit object handed to each handler rather than ambient state, so more
// than one session can exist in a single process.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*service.Selection
}

// NewManager creates a session manager with an empty guest session.
func NewManager() *Manager {
	return &Manager{
		sessions: map[string]*service.Selection{
			model.GuestUserID: service.NewSelection(),
		},
	}
}

// Get returns the selection for a session id, creating it on first use.
// An empty id resolves to the fixed guest session.
func (m *Manager) Get(id string) *service.Selection {
	if id == "" {
		id = model.GuestUserID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sel, ok := m.sessions[id]
	if !ok {
		sel = service.NewSelection()
		m.sessions[id] = sel
	}
	return sel
}

// New creates a fresh session and returns its id.
func (m *Manager) New() string {
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = service.NewSelection()
	return id
}
