// FilePath: internal/inspector/metrics.go
package inspector

import (
	"errors"
	"fmt"

	"github.com/satyam-v3/InfraMind/internal/models"
)

var (
	// ErrDivisionByZero is returned when a room's capacity is not positive.
	ErrDivisionByZero = errors.New("division by zero: room capacity must be positive")
	// ErrNegativeOccupancy is returned when a room reports fewer than zero occupants.
	ErrNegativeOccupancy = errors.New("room occupancy must not be negative")
)

// DeriveMetrics computes the presentation metrics of a room.
//
// OccupancyPercent is 100*occupancy/capacity rounded half up, computed in
// integer arithmetic so 12.5 always becomes 13. Values above 100 are kept.
func DeriveMetrics(room models.Room) (models.RoomMetrics, error) {
	if room.Capacity <= 0 {
		return models.RoomMetrics{}, fmt.Errorf("room %s: capacity %d: %w", room.ID, room.Capacity, ErrDivisionByZero)
	}
	if room.Occupancy < 0 {
		return models.RoomMetrics{}, fmt.Errorf("room %s: occupancy %d: %w", room.ID, room.Occupancy, ErrNegativeOccupancy)
	}

	return models.RoomMetrics{
		RoomID:           room.ID,
		OccupancyPercent: occupancyPercent(room.Occupancy, room.Capacity),
		StatusLabel:      room.Status.Badge(),
	}, nil
}

// occupancyPercent returns floor(100*occ/capacity + 1/2) for occ >= 0, capacity > 0.
func occupancyPercent(occ, capacity int) int {
	return (200*occ + capacity) / (2 * capacity)
}
