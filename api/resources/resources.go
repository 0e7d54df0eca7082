// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/satyam-v3/InfraMind/api/middleware"
	"github.com/satyam-v3/InfraMind/internal/consoleservice"
	"github.com/satyam-v3/InfraMind/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 16

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// Resources holds all HTTP resource handlers
type Resources struct {
	Rooms       *RoomHandlers
	Sessions    *SessionHandlers
	Alerts      *AlertHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
	Metrics     http.Handler
}

// NewResources creates a new Resources instance
func NewResources(svc *consoleservice.ConsoleService) *Resources {
	res := &Resources{
		Rooms:    &RoomHandlers{console: svc},
		Sessions: &SessionHandlers{console: svc},
		Alerts:   &AlertHandlers{console: svc},
		Metrics:  svc.Monitoring.Handler(),
	}
	res.HealthCheck = healthHandler(svc)
	return res
}

// @Summary Health check
// @Description Report service version, catalog version and live sessions
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func healthHandler(svc *consoleservice.ConsoleService) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, svc.Health(r.Context()))
	}
}

// Helper functions

// decodeJSON reads a bounded JSON body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) *errors.APIError {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.NewValidationError("invalid request body", err)
	}
	return nil
}

// toAPIError keeps typed errors and wraps anything else as internal
func toAPIError(err error, fallback string) *errors.APIError {
	if apiErr, ok := errors.As(err); ok {
		return apiErr
	}
	return errors.NewInternalError(fallback, err)
}

func respondWithError(w http.ResponseWriter, r *http.Request, err *errors.APIError) {
	err = err.WithRequestID(middleware.GetRequestID(r.Context()))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	if err.Code >= http.StatusInternalServerError {
		nuts.L.Errorf("[API] %s", err.Error())
	} else {
		nuts.L.Debugf("[API] %s", err.Error())
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
