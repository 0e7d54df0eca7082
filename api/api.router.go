// FilePath: api/api.router.go
package api

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/satyam-v3/InfraMind/api/middleware"
	"github.com/satyam-v3/InfraMind/api/resources"
	"github.com/satyam-v3/InfraMind/internal/consoleservice"
	nuts "github.com/vaudience/go-nuts"
)

type Router struct {
	router         *mux.Router
	resources      *resources.Resources
	console        *consoleservice.ConsoleService
	allowedOrigins []string
}

func NewRouter(svc *consoleservice.ConsoleService, allowedOrigins []string) *Router {
	r := &Router{
		router:         mux.NewRouter(),
		resources:      resources.NewResources(svc),
		console:        svc,
		allowedOrigins: allowedOrigins,
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	r.router.Use(middleware.RequestID)

	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// System
	api.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)
	api.Handle("/metrics", r.resources.Metrics).Methods(http.MethodGet)

	// Rooms
	rooms := api.PathPrefix("/rooms").Subrouter()
	rooms.HandleFunc("", r.resources.Rooms.ListRooms).Methods(http.MethodGet)
	rooms.HandleFunc("/export", r.resources.Rooms.ExportRooms).Methods(http.MethodGet)
	rooms.HandleFunc("/{id}", r.resources.Rooms.GetRoom).Methods(http.MethodGet)
	rooms.HandleFunc("/{id}/metrics", r.resources.Rooms.GetRoomMetrics).Methods(http.MethodGet)

	// Inspector sessions
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", r.resources.Sessions.CreateSession).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", r.resources.Sessions.GetSession).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", r.resources.Sessions.EndSession).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/query", r.resources.Sessions.SetSearchQuery).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/selection", r.resources.Sessions.SelectRoom).Methods(http.MethodPut)

	// Alerts and predictions
	api.HandleFunc("/alerts", r.resources.Alerts.ListAlerts).Methods(http.MethodGet)
	api.HandleFunc("/alerts/summary", r.resources.Alerts.AlertSummary).Methods(http.MethodGet)
	api.HandleFunc("/predictions", r.resources.Alerts.ListPredictions).Methods(http.MethodGet)
}

// Handler returns the router wrapped in recovery, CORS and request counting.
// Requests are logged in Combined Log Format to accessLog unless it is nil.
func (r *Router) Handler(accessLog io.Writer) http.Handler {
	var h http.Handler = r
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true), handlers.RecoveryLogger(recoveryLogger{}))(h)
	h = handlers.CORS(
		handlers.AllowedOrigins(r.allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
		handlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	)(h)
	h = r.console.Monitoring.Instrument(h)
	if accessLog == nil {
		return h
	}
	return handlers.CombinedLoggingHandler(accessLog, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	nuts.L.Errorf("[API] Recovered from panic: %v", v)
}
