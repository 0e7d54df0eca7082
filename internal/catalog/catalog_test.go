package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/satyam-v3/InfraMind/internal/inspector"
	"github.com/satyam-v3/InfraMind/internal/models"
	"github.com/satyam-v3/InfraMind/internal/repository/fixture"
	"github.com/satyam-v3/InfraMind/internal/repository/rediscache"
	"github.com/satyam-v3/InfraMind/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{ err error }

func (p failingProvider) List(ctx context.Context) ([]*models.Room, error) {
	return nil, p.err
}

func newCache(t *testing.T) *rediscache.SnapshotCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return rediscache.New(client, "catalog:test", 0)
}

func TestStore_EmptyListIsNotNil(t *testing.T) {
	store := NewStore()
	rooms := store.ListRooms()
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
	assert.Zero(t, store.Version())
}

func TestStore_ListReturnsSnapshotCopy(t *testing.T) {
	store := NewStore(models.Room{ID: "1", Name: "Room 101"}, models.Room{ID: "2", Name: "Room 102"})

	rooms := store.ListRooms()
	rooms[0].Name = "mutated"

	again := store.ListRooms()
	assert.Equal(t, "Room 101", again[0].Name)
	assert.Equal(t, 2, store.Len())
}

func TestStore_ReplaceBumpsVersion(t *testing.T) {
	store := NewStore(models.Room{ID: "1"})
	assert.Equal(t, uint64(1), store.Version())

	v := store.Replace([]models.Room{{ID: "2"}, {ID: "3"}})
	assert.Equal(t, uint64(2), v)
	assert.False(t, store.UpdatedAt().IsZero())

	_, ok := store.Lookup("1")
	assert.False(t, ok)
	room, ok := store.Lookup("3")
	require.True(t, ok)
	assert.Equal(t, "3", room.ID)
}

func TestStore_ConcurrentReadsSeeWholeSnapshots(t *testing.T) {
	a := []models.Room{{ID: "a1"}, {ID: "a2"}}
	b := []models.Room{{ID: "b1"}, {ID: "b2"}, {ID: "b3"}}
	store := NewStore(a...)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if i%2 == 0 {
				store.Replace(b)
			} else {
				store.Replace(a)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			rooms := store.ListRooms()
			if len(rooms) == 2 {
				assert.Equal(t, "a1", rooms[0].ID)
			} else {
				assert.Len(t, rooms, 3)
				assert.Equal(t, "b1", rooms[0].ID)
			}
		}
	}()
	wg.Wait()
}

func TestSyncer_SyncInstallsProviderRooms(t *testing.T) {
	store := NewStore()
	repo := fixture.New(time.Now())
	syncer := NewSyncer(store, repo, nil, time.Minute)

	require.NoError(t, syncer.Sync(context.Background()))
	assert.Equal(t, 6, store.Len())
	assert.Equal(t, "Room 101", store.ListRooms()[0].Name)

	repo.Remove("1")
	require.NoError(t, syncer.Sync(context.Background()))
	assert.Equal(t, 5, store.Len())
	assert.Equal(t, uint64(2), store.Version())
}

func TestSyncer_SyncFailureKeepsSnapshot(t *testing.T) {
	store := NewStore(models.Room{ID: "1", Name: "Room 101"})
	syncer := NewSyncer(store, failingProvider{err: errors.New("db down")}, nil, time.Minute)

	err := syncer.Sync(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, uint64(1), store.Version())
}

func TestSyncer_SyncWritesCache(t *testing.T) {
	cache := newCache(t)
	store := NewStore()
	syncer := NewSyncer(store, fixture.New(time.Now()), cache, time.Minute)

	require.NoError(t, syncer.Sync(context.Background()))

	cached, err := cache.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, cached, 6)
}

func TestSyncer_WarmFallsBackToCache(t *testing.T) {
	ctx := context.Background()
	cache := newCache(t)
	require.NoError(t, cache.Save(ctx, []models.Room{{ID: "9", Name: "Cached Hall", Capacity: 10}}))

	store := NewStore()
	syncer := NewSyncer(store, failingProvider{err: errors.New("db down")}, cache, time.Minute)

	require.NoError(t, syncer.Warm(ctx))
	rooms := store.ListRooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, "Cached Hall", rooms[0].Name)
}

func TestSyncer_WarmFailsWithoutProviderOrCache(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	syncer := NewSyncer(store, failingProvider{err: errors.New("db down")}, nil, time.Minute)
	assert.Error(t, syncer.Warm(ctx))

	syncer = NewSyncer(store, failingProvider{err: errors.New("db down")}, newCache(t), time.Minute)
	assert.Error(t, syncer.Warm(ctx))
	assert.Zero(t, store.Len())
}

func TestSyncer_RunStopsWithContext(t *testing.T) {
	store := NewStore()
	syncer := NewSyncer(store, fixture.New(time.Now()), nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		syncer.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return store.Len() == 6 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("syncer did not stop")
	}
}

func TestSyncer_OnUpdateReceivesVersion(t *testing.T) {
	store := NewStore()
	syncer := NewSyncer(store, fixture.New(time.Now()), nil, time.Minute)

	var mu sync.Mutex
	var got []uint64
	syncer.OnUpdate("test", func(version uint64) {
		mu.Lock()
		got = append(got, version)
		mu.Unlock()
	})

	require.NoError(t, syncer.Sync(context.Background()))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1 && got[0] == 1
	}, time.Second, 5*time.Millisecond)
}

func TestSyncer_UpdateMovesSelectionOffRemovedRoom(t *testing.T) {
	ctx := context.Background()
	repo := fixture.NewWithRooms(
		models.Room{ID: "a", Name: "Room A", Capacity: 10},
		models.Room{ID: "b", Name: "Room B", Capacity: 10},
	)
	store := NewStore()
	syncer := NewSyncer(store, repo, nil, time.Minute)
	sessions := session.NewManager(store)

	fired := 0
	syncer.OnUpdate("sessions", func(uint64) {
		fired++
		sessions.ReconcileAll()
	})

	require.NoError(t, syncer.Sync(ctx))
	id := sessions.Create()
	selected := func() string {
		var got string
		require.NoError(t, sessions.Do(id, func(insp *inspector.Inspector) error {
			got = insp.SelectedRoomID()
			return nil
		}))
		return got
	}
	require.NoError(t, sessions.Do(id, func(insp *inspector.Inspector) error {
		require.True(t, insp.SelectRoom("b"))
		return nil
	}))

	require.True(t, repo.Remove("b"))
	require.NoError(t, syncer.Sync(ctx))
	assert.Equal(t, "a", selected())

	require.NoError(t, repo.Upsert(ctx, &models.Room{ID: "b", Name: "Room B", Capacity: 10}))
	require.NoError(t, syncer.Sync(ctx))
	assert.Equal(t, "a", selected())
	assert.Equal(t, 3, fired)
}
