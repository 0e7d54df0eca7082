// FilePath: internal/catalog/store.go
package catalog

import (
	"sync"
	"time"

	"github.com/satyam-v3/InfraMind/internal/models"
)

// Store is the authoritative in-memory room catalog. Readers always get a
// full copy taken under one lock, so a refresh never shows half of two
// snapshots.
type Store struct {
	mu        sync.RWMutex
	rooms     []models.Room
	version   uint64
	updatedAt time.Time
}

// NewStore creates a store holding rooms in the given order.
func NewStore(rooms ...models.Room) *Store {
	s := &Store{}
	if len(rooms) > 0 {
		s.Replace(rooms)
	}
	return s
}

// ListRooms returns every room in catalog order. It never returns nil.
func (s *Store) ListRooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Lookup returns the room with the given id.
func (s *Store) Lookup(id string) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, room := range s.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return models.Room{}, false
}

// Replace swaps in a new snapshot and returns its version.
func (s *Store) Replace(rooms []models.Room) uint64 {
	next := make([]models.Room, len(rooms))
	copy(next, rooms)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = next
	s.version++
	s.updatedAt = time.Now()
	return s.version
}

// Len returns the number of rooms in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Version increases by one on every Replace.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// UpdatedAt returns when the current snapshot was installed.
func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
