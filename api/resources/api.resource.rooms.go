// FilePath: api/resources/api.resource.rooms.go
package resources

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/satyam-v3/InfraMind/internal/consoleservice"
	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RoomHandlers encapsulates the room-related HTTP handlers
type RoomHandlers struct {
	console *consoleservice.ConsoleService
}

// @Summary List rooms
// @Description Get a paginated list of rooms, filtered by name or building
// @Tags rooms
// @Produce json
// @Param q query string false "Case-insensitive match on name or building"
// @Param status query string false "Room status"
// @Param building query string false "Building"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} models.RoomPage
// @Failure 400 {object} errors.APIError
// @Router /rooms [get]
func (h *RoomHandlers) ListRooms(w http.ResponseWriter, r *http.Request) {
	var filters models.RoomFilters
	if err := queryDecoder.Decode(&filters, r.URL.Query()); err != nil {
		respondWithError(w, r, errors.NewValidationError("invalid query parameters", err))
		return
	}

	page, err := h.console.ListRooms(r.Context(), filters)
	if err != nil {
		respondWithError(w, r, toAPIError(err, "failed to list rooms"))
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

// @Summary Get a room by ID
// @Description Get a room as it is in the current catalog snapshot
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} models.Room
// @Failure 404 {object} errors.APIError
// @Router /rooms/{id} [get]
func (h *RoomHandlers) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.console.GetRoom(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, r, toAPIError(err, "failed to get room"))
		return
	}

	respondWithJSON(w, http.StatusOK, room)
}

// @Summary Get room metrics
// @Description Derive occupancy percent and status label for a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} models.RoomMetrics
// @Failure 404 {object} errors.APIError
// @Failure 422 {object} errors.APIError
// @Router /rooms/{id}/metrics [get]
func (h *RoomHandlers) GetRoomMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.console.GetRoomMetrics(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, r, toAPIError(err, "failed to derive room metrics"))
		return
	}

	respondWithJSON(w, http.StatusOK, metrics)
}

// @Summary Export rooms
// @Description Download the rooms matching q as an XLSX workbook
// @Tags rooms
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param q query string false "Case-insensitive match on name or building"
// @Success 200 {file} file
// @Router /rooms/export [get]
func (h *RoomHandlers) ExportRooms(w http.ResponseWriter, r *http.Request) {
	data, err := h.console.ExportRoomsXLSX(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondWithError(w, r, toAPIError(err, "failed to export rooms"))
		return
	}

	filename := fmt.Sprintf("rooms-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
