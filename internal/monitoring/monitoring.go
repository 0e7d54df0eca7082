// FilePath: internal/monitoring/monitoring.go
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	nuts "github.com/vaudience/go-nuts"
)

const metricPrefix = "inframind_"

// Service provides monitoring functionality
type Service struct {
	registry *prometheus.Registry

	events       *prometheus.CounterVec
	catalogRooms prometheus.Gauge
	catalogVer   prometheus.Gauge
	sessions     prometheus.Gauge
	invalidData  *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
}

// NewService creates a monitoring service with its own registry
func NewService() *Service {
	s := &Service{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "events_total",
			Help: "Lifecycle events by name",
		}, []string{"event"}),
		catalogRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "catalog_rooms",
			Help: "Rooms in the current catalog snapshot",
		}),
		catalogVer: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "catalog_version",
			Help: "Version of the current catalog snapshot",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "sessions",
			Help: "Live inspector sessions",
		}),
		invalidData: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "invalid_room_data_total",
			Help: "Metric derivations rejected because of invalid room data",
		}, []string{"room_id"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "http_requests_total",
			Help: "HTTP requests by method and status code",
		}, []string{"method", "code"}),
	}
	s.registry.MustRegister(s.events, s.catalogRooms, s.catalogVer, s.sessions, s.invalidData, s.httpRequests)
	return s
}

// RecordEvent records a monitored event with labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	s.events.WithLabelValues(eventName).Inc()
	nuts.L.Debugf("[Monitoring] Event %s recorded with labels: %v", eventName, labels)
}

// SetCatalog records the size and version of the installed catalog
func (s *Service) SetCatalog(rooms int, version uint64) {
	s.catalogRooms.Set(float64(rooms))
	s.catalogVer.Set(float64(version))
}

// SetSessions records the number of live sessions
func (s *Service) SetSessions(n int) {
	s.sessions.Set(float64(n))
}

// RecordInvalidData counts a rejected derivation for a room
func (s *Service) RecordInvalidData(roomID string) {
	s.invalidData.WithLabelValues(roomID).Inc()
}

// Instrument counts requests passing through next
func (s *Service) Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(s.httpRequests, next)
}

// Handler exposes the registry in the Prometheus text format
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
