// FilePath: api/resources/api.resource.alerts.go
package resources

import (
	"net/http"

	"github.com/satyam-v3/InfraMind/internal/consoleservice"
)

// AlertHandlers encapsulates the alert and prediction HTTP handlers
type AlertHandlers struct {
	console *consoleservice.ConsoleService
}

// @Summary List active alerts
// @Tags alerts
// @Produce json
// @Success 200 {array} models.AlertRow
// @Failure 503 {object} errors.APIError
// @Router /alerts [get]
func (h *AlertHandlers) ListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.console.ListAlerts(r.Context())
	if err != nil {
		respondWithError(w, r, toAPIError(err, "failed to list alerts"))
		return
	}
	respondWithJSON(w, http.StatusOK, alerts)
}

// @Summary Summarize active alerts
// @Description Count active alerts per severity
// @Tags alerts
// @Produce json
// @Success 200 {object} models.AlertSummary
// @Router /alerts/summary [get]
func (h *AlertHandlers) AlertSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.console.AlertSummary(r.Context())
	if err != nil {
		respondWithError(w, r, toAPIError(err, "failed to summarize alerts"))
		return
	}
	respondWithJSON(w, http.StatusOK, sum)
}

// @Summary List predictions
// @Tags predictions
// @Produce json
// @Success 200 {array} models.Prediction
// @Router /predictions [get]
func (h *AlertHandlers) ListPredictions(w http.ResponseWriter, r *http.Request) {
	predictions, err := h.console.ListPredictions(r.Context())
	if err != nil {
		respondWithError(w, r, toAPIError(err, "failed to list predictions"))
		return
	}
	respondWithJSON(w, http.StatusOK, predictions)
}
