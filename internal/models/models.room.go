// FilePath: internal/models/models.room.go
package models

import "time"

// RoomStatus is the health classification assigned by the monitoring process.
type RoomStatus string

const (
	RoomStatusActive  RoomStatus = "active"
	RoomStatusWarning RoomStatus = "warning"
	RoomStatusIdle    RoomStatus = "idle"
)

// BadgeVariant is the display category a status or severity renders as.
type BadgeVariant string

const (
	BadgeSuccess     BadgeVariant = "success"
	BadgeWarning     BadgeVariant = "warning"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeDefault     BadgeVariant = "default"
)

// Badge maps the status to its display category. Unknown statuses map to
// BadgeDefault.
func (s RoomStatus) Badge() BadgeVariant {
	switch s {
	case RoomStatusActive:
		return BadgeSuccess
	case RoomStatusWarning:
		return BadgeWarning
	case RoomStatusIdle:
		return BadgeSecondary
	default:
		return BadgeDefault
	}
}

type Room struct {
	ID          string     `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Building    string     `json:"building" db:"building"`
	Floor       int        `json:"floor" db:"floor"`
	Capacity    int        `json:"capacity" db:"capacity"`
	Occupancy   int        `json:"occupancy" db:"occupancy"`
	Temperature float64    `json:"temperature" db:"temperature"`
	Humidity    float64    `json:"humidity" db:"humidity"`
	Status      RoomStatus `json:"status" db:"status"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// RoomMetrics holds values derived from a room's raw attributes on demand.
type RoomMetrics struct {
	RoomID           string       `json:"room_id"`
	OccupancyPercent int          `json:"occupancy_percent"`
	StatusLabel      BadgeVariant `json:"status_label"`
}
