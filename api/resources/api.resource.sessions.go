// FilePath: api/resources/api.resource.sessions.go
package resources

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/satyam-v3/InfraMind/internal/consoleservice"
	"github.com/satyam-v3/InfraMind/internal/models"
)

// SessionHandlers encapsulates the inspector session HTTP handlers
type SessionHandlers struct {
	console *consoleservice.ConsoleService
}

// @Summary Create an inspector session
// @Description Start a session with an empty search query and the first room selected
// @Tags sessions
// @Produce json
// @Success 201 {object} models.SessionView
// @Router /sessions [post]
func (h *SessionHandlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.console.CreateSession(r.Context())
	if err != nil {
		respondWithError(w, r, toAPIError(err, "failed to create session"))
		return
	}

	respondWithJSON(w, http.StatusCreated, view)
}

// @Summary Get an inspector session
// @Description Render the session against the current catalog
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.SessionView
// @Failure 404 {object} errors.APIError
// @Router /sessions/{id} [get]
func (h *SessionHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.console.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, r, toAPIError(err, "failed to get session"))
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// @Summary Set the search query
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body models.SearchQueryRequest true "Search query"
// @Success 200 {object} models.SessionView
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /sessions/{id}/query [put]
func (h *SessionHandlers) SetSearchQuery(w http.ResponseWriter, r *http.Request) {
	var req models.SearchQueryRequest
	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		respondWithError(w, r, apiErr)
		return
	}

	view, err := h.console.SetSearchQuery(r.Context(), mux.Vars(r)["id"], req.Query)
	if err != nil {
		respondWithError(w, r, toAPIError(err, "failed to set search query"))
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// @Summary Select a room
// @Description Unknown room ids keep the previous selection; selection_applied reports the outcome
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body models.SelectionRequest true "Room to select"
// @Success 200 {object} models.SessionView
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /sessions/{id}/selection [put]
func (h *SessionHandlers) SelectRoom(w http.ResponseWriter, r *http.Request) {
	var req models.SelectionRequest
	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		respondWithError(w, r, apiErr)
		return
	}

	view, err := h.console.SelectRoom(r.Context(), mux.Vars(r)["id"], req.RoomID)
	if err != nil {
		respondWithError(w, r, toAPIError(err, "failed to select room"))
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// @Summary End an inspector session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} errors.APIError
// @Router /sessions/{id} [delete]
func (h *SessionHandlers) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.console.EndSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondWithError(w, r, toAPIError(err, "failed to end session"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
