// FilePath: internal/repository/postgres/postgres.room.go
package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/satyam-v3/InfraMind/internal/database"
	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/models"
	"github.com/satyam-v3/InfraMind/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

const roomColumns = `id, name, building, floor, capacity, occupancy, temperature, humidity, status, updated_at`

var roomSchema = []string{
	`CREATE TABLE IF NOT EXISTS rooms (
		seq BIGSERIAL UNIQUE,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		building TEXT NOT NULL,
		floor INTEGER NOT NULL DEFAULT 0 CHECK (floor >= 0),
		capacity INTEGER NOT NULL,
		occupancy INTEGER NOT NULL DEFAULT 0 CHECK (occupancy >= 0),
		temperature DOUBLE PRECISION NOT NULL DEFAULT 0,
		humidity DOUBLE PRECISION NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'idle',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

type RoomRepo struct {
	PostgresBaseRepo
}

func NewRoomRepository(db database.DB) *RoomRepo {
	repo := &PostgresBaseRepo{db: db}
	return &RoomRepo{PostgresBaseRepo: *repo}
}

// InitializeSchema creates the rooms table if it does not exist.
func (r *RoomRepo) InitializeSchema(ctx context.Context) error {
	return r.initializeSchema(ctx, roomSchema)
}

// List returns all rooms in the order they were first inserted.
func (r *RoomRepo) List(ctx context.Context) ([]*models.Room, error) {
	rooms := []*models.Room{}
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY seq ASC`

	err := r.db.GetDB().SelectContext(ctx, &rooms, query)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list rooms", err)
	}
	return rooms, nil
}

func (r *RoomRepo) Get(ctx context.Context, id string) (*models.Room, error) {
	room := &models.Room{}
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, room, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("room not found", repository.ErrNotFound)
		}
		return nil, errors.NewDatabaseError("failed to get room", err)
	}
	return room, nil
}

// Upsert inserts a room or updates it in place, keeping its position.
func (r *RoomRepo) Upsert(ctx context.Context, room *models.Room) error {
	if err := repository.ValidateRoom(room); err != nil {
		return errors.NewValidationError("invalid room", err)
	}
	if room.UpdatedAt.IsZero() {
		room.UpdatedAt = time.Now()
	}

	query := `
		INSERT INTO rooms (
			id, name, building, floor, capacity, occupancy,
			temperature, humidity, status, updated_at
		) VALUES (
			:id, :name, :building, :floor, :capacity, :occupancy,
			:temperature, :humidity, :status, :updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			building = EXCLUDED.building,
			floor = EXCLUDED.floor,
			capacity = EXCLUDED.capacity,
			occupancy = EXCLUDED.occupancy,
			temperature = EXCLUDED.temperature,
			humidity = EXCLUDED.humidity,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, room)
	if err != nil {
		return errors.NewDatabaseError("failed to upsert room", err)
	}
	return nil
}

// SeedIfEmpty inserts rooms when the table holds none, returning how many
// were written.
func (r *RoomRepo) SeedIfEmpty(ctx context.Context, rooms []*models.Room) (int, error) {
	var count int
	if err := r.db.GetDB().GetContext(ctx, &count, `SELECT COUNT(*) FROM rooms`); err != nil {
		return 0, errors.NewDatabaseError("failed to count rooms", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, room := range rooms {
		if err := r.Upsert(ctx, room); err != nil {
			return 0, err
		}
	}
	nuts.L.Infof("[RoomRepo] Seeded %d rooms", len(rooms))
	return len(rooms), nil
}
