// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/satyam-v3/InfraMind/internal/models"
)

var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput indicates that the input data is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// RoomRepository defines the interface for room catalog providers
type RoomRepository interface {
	List(ctx context.Context) ([]*models.Room, error)
	Get(ctx context.Context, id string) (*models.Room, error)
	Upsert(ctx context.Context, room *models.Room) error
}

// AlertRepository defines the interface for active alert listings
type AlertRepository interface {
	ListActive(ctx context.Context) ([]*models.Alert, error)
}

// PredictionRepository defines the interface for forecast listings
type PredictionRepository interface {
	List(ctx context.Context) ([]*models.Prediction, error)
}

// ValidateRoom checks the fields a provider must never store empty.
func ValidateRoom(room *models.Room) error {
	if room == nil || room.ID == "" || room.Name == "" {
		return ErrInvalidInput
	}
	if room.Floor < 0 || room.Occupancy < 0 {
		return ErrInvalidInput
	}
	return nil
}
