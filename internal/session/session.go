// FilePath: internal/session/session.go
package session

import (
	"sync"
	"time"

	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/inspector"
	nuts "github.com/vaudience/go-nuts"
)

// Manager owns one Inspector per UI session. Calls for the same session are
// serialised; different sessions proceed independently.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	catalog  inspector.RoomLister
	now      func() time.Time
}

type entry struct {
	mu        sync.Mutex
	inspector *inspector.Inspector
	lastSeen  time.Time
}

// NewManager creates a manager whose inspectors read from catalog.
func NewManager(catalog inspector.RoomLister) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		catalog:  catalog,
		now:      time.Now,
	}
}

// Create starts a session and returns its id.
func (m *Manager) Create() string {
	id := nuts.NID("ses", 12)
	e := &entry{inspector: inspector.New(m.catalog), lastSeen: m.now()}

	m.mu.Lock()
	m.sessions[id] = e
	m.mu.Unlock()

	nuts.L.Debugf("[Sessions] Created session %s", id)
	return id
}

// Do runs fn against the session's inspector and marks the session as seen.
func (m *Manager) Do(id string, fn func(insp *inspector.Inspector) error) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return errors.NewNotFoundError("session not found", nil)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = m.now()
	return fn(e.inspector)
}

// Delete ends a session. It reports whether the session existed.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// ExpireIdle ends every session not seen within idle and returns their ids.
func (m *Manager) ExpireIdle(idle time.Duration) []string {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	defer m.mu.Unlock()
	var expired []string
	for id, e := range m.sessions {
		e.mu.Lock()
		stale := e.lastSeen.Before(cutoff)
		e.mu.Unlock()
		if stale {
			delete(m.sessions, id)
			expired = append(expired, id)
		}
	}
	return expired
}

// ReconcileAll moves every session whose selected room has left the catalog
// back onto the first room.
func (m *Manager) ReconcileAll() {
	m.mu.Lock()
	entries := make([]*entry, 0, len(m.sessions))
	for _, e := range m.sessions {
		entries = append(entries, e)
	}
	m.mu.Unlock()

	for _, e := range entries {
		e.mu.Lock()
		e.inspector.Reconcile()
		e.mu.Unlock()
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
