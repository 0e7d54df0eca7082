// FilePath: internal/repository/fixture/fixture.go
package fixture

import (
	"context"
	"sync"
	"time"

	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/models"
	"github.com/satyam-v3/InfraMind/internal/repository"
)

// Repo is an in-memory provider for rooms, alerts and predictions. It backs
// the default "fixture" catalog provider and the tests.
type Repo struct {
	mu          sync.RWMutex
	rooms       []*models.Room
	alerts      []*models.Alert
	predictions []*models.Prediction
}

// New returns a Repo holding the campus demo data, with alert times relative
// to now.
func New(now time.Time) *Repo {
	return &Repo{
		rooms:       CampusRooms(now),
		alerts:      CampusAlerts(now),
		predictions: CampusPredictions(),
	}
}

// NewWithRooms returns a Repo holding only the given rooms.
func NewWithRooms(rooms ...models.Room) *Repo {
	r := &Repo{}
	for i := range rooms {
		room := rooms[i]
		r.rooms = append(r.rooms, &room)
	}
	return r
}

func (r *Repo) List(ctx context.Context) ([]*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		c := *room
		out = append(out, &c)
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.ID == id {
			c := *room
			return &c, nil
		}
	}
	return nil, errors.NewNotFoundError("room not found", repository.ErrNotFound)
}

// Upsert replaces a room in place, keeping its position, or appends it.
func (r *Repo) Upsert(ctx context.Context, room *models.Room) error {
	if err := repository.ValidateRoom(room); err != nil {
		return errors.NewValidationError("invalid room", err)
	}
	c := *room
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.rooms {
		if existing.ID == c.ID {
			r.rooms[i] = &c
			return nil
		}
	}
	r.rooms = append(r.rooms, &c)
	return nil
}

// Remove deletes a room. It stands in for the ingestion process retiring a
// room.
func (r *Repo) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, room := range r.rooms {
		if room.ID == id {
			r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Repo) ListActive(ctx context.Context) ([]*models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Alert, 0, len(r.alerts))
	for _, alert := range r.alerts {
		c := *alert
		out = append(out, &c)
	}
	return out, nil
}

// ListPredictions returns the forecasts; see Predictions for the
// PredictionRepository view.
func (r *Repo) ListPredictions(ctx context.Context) ([]*models.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Prediction, 0, len(r.predictions))
	for _, p := range r.predictions {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

// Predictions adapts the Repo to repository.PredictionRepository, whose List
// would otherwise collide with the room listing.
func (r *Repo) Predictions() repository.PredictionRepository {
	return predictionView{r}
}

type predictionView struct{ r *Repo }

func (p predictionView) List(ctx context.Context) ([]*models.Prediction, error) {
	return p.r.ListPredictions(ctx)
}
