// FilePath: internal/catalog/syncer.go
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/satyam-v3/InfraMind/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// EventUpdated is emitted with the new catalog version after every refresh.
const EventUpdated = "catalog.updated"

// Provider is the source the catalog is refreshed from.
type Provider interface {
	List(ctx context.Context) ([]*models.Room, error)
}

// SnapshotCache keeps the last good catalog across restarts.
type SnapshotCache interface {
	Save(ctx context.Context, rooms []models.Room) error
	Load(ctx context.Context) ([]models.Room, error)
}

// Syncer refreshes a Store from a Provider on an interval.
type Syncer struct {
	store    *Store
	provider Provider
	cache    SnapshotCache
	interval time.Duration
	events   *nuts.EventEmitter
}

// NewSyncer creates a Syncer. cache may be nil.
func NewSyncer(store *Store, provider Provider, cache SnapshotCache, interval time.Duration) *Syncer {
	return &Syncer{
		store:    store,
		provider: provider,
		cache:    cache,
		interval: interval,
		events:   nuts.NewEventEmitter(),
	}
}

// Sync loads the provider's rooms into the store and refreshes the cache.
func (s *Syncer) Sync(ctx context.Context) error {
	list, err := s.provider.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list rooms: %w", err)
	}

	rooms := make([]models.Room, 0, len(list))
	for _, room := range list {
		if room == nil {
			continue
		}
		if room.Capacity <= 0 {
			nuts.L.Warnf("[Catalog] Room %s reports capacity %d", room.ID, room.Capacity)
		}
		rooms = append(rooms, *room)
	}

	s.install(rooms)

	if s.cache != nil {
		if err := s.cache.Save(ctx, rooms); err != nil {
			nuts.L.Warnf("[Catalog] Failed to cache snapshot: %v", err)
		}
	}
	return nil
}

// Warm performs the first sync. When the provider is unavailable it falls
// back to the cached snapshot, and only fails if neither is available.
func (s *Syncer) Warm(ctx context.Context) error {
	err := s.Sync(ctx)
	if err == nil {
		return nil
	}
	if s.cache == nil {
		return err
	}

	nuts.L.Warnf("[Catalog] Provider unavailable, warming from cache: %v", err)
	rooms, cacheErr := s.cache.Load(ctx)
	if cacheErr != nil {
		return fmt.Errorf("%w (cache: %v)", err, cacheErr)
	}
	s.install(rooms)
	return nil
}

// Run syncs every interval until ctx is done.
func (s *Syncer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sync(ctx); err != nil {
				nuts.L.Errorf("[Catalog] Refresh failed, keeping version %d: %v", s.store.Version(), err)
			}
		}
	}
}

// OnUpdate registers a named callback for catalog refreshes. Callbacks run
// synchronously with the refresh that installed the version.
func (s *Syncer) OnUpdate(name string, handler func(version uint64)) {
	if _, err := s.events.On(EventUpdated, name, func(version uint64) {
		handler(version)
	}); err != nil {
		nuts.L.Warnf("[Catalog] Failed to register update handler %s: %v", name, err)
	}
}

func (s *Syncer) install(rooms []models.Room) {
	version := s.store.Replace(rooms)
	nuts.L.Debugf("[Catalog] Installed %d rooms as version %d", len(rooms), version)
	if err := s.events.Emit(EventUpdated, version); err != nil {
		nuts.L.Warnf("[Catalog] Failed to notify update handlers for version %d: %v", version, err)
	}
}
