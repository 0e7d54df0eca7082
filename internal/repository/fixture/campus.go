// FilePath: internal/repository/fixture/campus.go
package fixture

import (
	"time"

	"github.com/satyam-v3/InfraMind/internal/models"
)

// CampusRooms is the demo campus inventory.
func CampusRooms(now time.Time) []*models.Room {
	return []*models.Room{
		{ID: "1", Name: "Room 101", Building: "A", Floor: 1, Capacity: 50, Occupancy: 42, Temperature: 22, Humidity: 45, Status: models.RoomStatusActive, UpdatedAt: now},
		{ID: "2", Name: "Room 102", Building: "A", Floor: 1, Capacity: 30, Occupancy: 18, Temperature: 23, Humidity: 48, Status: models.RoomStatusActive, UpdatedAt: now},
		{ID: "3", Name: "Room 201", Building: "A", Floor: 2, Capacity: 60, Occupancy: 55, Temperature: 24, Humidity: 50, Status: models.RoomStatusWarning, UpdatedAt: now},
		{ID: "4", Name: "Lab 301", Building: "B", Floor: 3, Capacity: 40, Occupancy: 5, Temperature: 21, Humidity: 42, Status: models.RoomStatusActive, UpdatedAt: now},
		{ID: "5", Name: "Auditorium", Building: "C", Floor: 1, Capacity: 200, Occupancy: 0, Temperature: 20, Humidity: 40, Status: models.RoomStatusIdle, UpdatedAt: now},
		{ID: "6", Name: "Room 401", Building: "B", Floor: 4, Capacity: 35, Occupancy: 32, Temperature: 25, Humidity: 52, Status: models.RoomStatusWarning, UpdatedAt: now},
	}
}

// CampusAlerts is the demo set of active alerts.
func CampusAlerts(now time.Time) []*models.Alert {
	return []*models.Alert{
		{ID: "1", Title: "High occupancy in Room 301", Severity: models.SeverityHigh, Location: "Building A", RaisedAt: now.Add(-5 * time.Minute)},
		{ID: "2", Title: "Temperature spike detected", Severity: models.SeverityMedium, Location: "Building B", RaisedAt: now.Add(-15 * time.Minute)},
		{ID: "3", Title: "Humidity level below threshold", Severity: models.SeverityLow, Location: "Lab 201", RaisedAt: now.Add(-1 * time.Hour)},
		{ID: "4", Title: "Sensor connectivity issue", Severity: models.SeverityHigh, Location: "Building C", RaisedAt: now.Add(-2 * time.Hour)},
	}
}

// CampusPredictions is the demo set of forecasts.
func CampusPredictions() []*models.Prediction {
	return []*models.Prediction{
		{ID: "1", Type: models.PredictionOccupancy, Value: "85%", Location: "Room 101", Timeframe: "Next 2 hours", Confidence: 92},
		{ID: "2", Type: models.PredictionOccupancy, Value: "62%", Location: "Library", Timeframe: "Tomorrow 10 AM", Confidence: 88},
		{ID: "3", Type: models.PredictionEnergy, Value: "High usage", Location: "Building A", Timeframe: "This evening", Confidence: 95},
	}
}
