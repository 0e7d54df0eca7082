// FilePath: internal/repository/rediscache/rediscache.go
package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/models"
	"github.com/satyam-v3/InfraMind/internal/repository"
)

// SnapshotCache stores the last good room catalog as one JSON value.
type SnapshotCache struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

type snapshot struct {
	Rooms   []models.Room `json:"rooms"`
	SavedAt time.Time     `json:"saved_at"`
}

// New creates a SnapshotCache. A ttl of zero keeps the snapshot forever.
func New(client redis.Cmdable, key string, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, key: key, ttl: ttl}
}

func (c *SnapshotCache) Save(ctx context.Context, rooms []models.Room) error {
	data, err := json.Marshal(snapshot{Rooms: rooms, SavedAt: time.Now().UTC()})
	if err != nil {
		return errors.NewInternalError("failed to encode catalog snapshot", err)
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return errors.NewCacheError("failed to store catalog snapshot", err)
	}
	return nil
}

func (c *SnapshotCache) Load(ctx context.Context) ([]models.Room, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err == redis.Nil {
		return nil, errors.NewNotFoundError("no catalog snapshot cached", repository.ErrNotFound)
	}
	if err != nil {
		return nil, errors.NewCacheError("failed to read catalog snapshot", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.NewCacheError("corrupt catalog snapshot", err)
	}
	if snap.Rooms == nil {
		snap.Rooms = []models.Room{}
	}
	return snap.Rooms, nil
}
