// FilePath: internal/consoleservice/consoleservice.room.go
package consoleservice

import (
	"context"
	"strings"

	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/inspector"
	"github.com/satyam-v3/InfraMind/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// ListRooms returns one page of the catalog filtered by the search query,
// status and building. Rooms keep their catalog order.
func (s *ConsoleService) ListRooms(ctx context.Context, filters models.RoomFilters) (*models.RoomPage, error) {
	if filters.Limit <= 0 || filters.Limit > MaxLimit {
		filters.Limit = DefaultLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	version := s.Catalog.Version()
	matched := filterRooms(s.Catalog.ListRooms(), filters)

	page := &models.RoomPage{
		Rooms:          make([]models.RoomRow, 0, filters.Limit),
		Total:          len(matched),
		Offset:         filters.Offset,
		Limit:          filters.Limit,
		CatalogVersion: version,
	}
	if filters.Offset >= len(matched) {
		return page, nil
	}
	end := filters.Offset + filters.Limit
	if end > len(matched) {
		end = len(matched)
	}
	for _, room := range matched[filters.Offset:end] {
		page.Rooms = append(page.Rooms, inspector.NewRow(room, false))
	}
	return page, nil
}

func filterRooms(rooms []models.Room, filters models.RoomFilters) []models.Room {
	matched := inspector.Filter(filters.Query, rooms)
	if filters.Status == "" && filters.Building == "" {
		return matched
	}
	out := matched[:0]
	for _, room := range matched {
		if filters.Status != "" && room.Status != filters.Status {
			continue
		}
		if filters.Building != "" && !strings.EqualFold(room.Building, filters.Building) {
			continue
		}
		out = append(out, room)
	}
	return out
}

// GetRoom returns a room from the current catalog snapshot
func (s *ConsoleService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	room, ok := s.Catalog.Lookup(id)
	if !ok {
		return nil, errors.NewNotFoundError("room not found", nil)
	}
	return &room, nil
}

// GetRoomMetrics derives the metrics of a room in the current catalog
// snapshot. Rooms whose data cannot be derived from yield an invalid_data
// error.
func (s *ConsoleService) GetRoomMetrics(ctx context.Context, id string) (*models.RoomMetrics, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics, err := inspector.DeriveMetrics(*room)
	if err != nil {
		s.recordInvalidData(room.ID, err)
		return nil, errors.NewInvalidDataError("room data cannot be derived from", err)
	}
	return &metrics, nil
}

func (s *ConsoleService) recordInvalidData(roomID string, err error) {
	nuts.L.Warnf("[ConsoleService] Invalid data for room %s: %v", roomID, err)
	s.Monitoring.RecordInvalidData(roomID)
}
