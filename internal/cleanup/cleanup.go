// FilePath: internal/cleanup/cleanup.go
package cleanup

import (
	"context"
	"time"

	"github.com/satyam-v3/InfraMind/internal/session"
	nuts "github.com/vaudience/go-nuts"
)

const (
	EventSessionEnded   = "session.ended"
	EventSessionExpired = "session.expired"
)

// CleanupService ends UI sessions, explicitly or after they go idle, so no
// selection state outlives its session.
type CleanupService struct {
	sessions    *session.Manager
	idleTimeout time.Duration
	events      *nuts.EventEmitter
}

// New creates a new CleanupService
func New(sessions *session.Manager, idleTimeout time.Duration) *CleanupService {
	return &CleanupService{
		sessions:    sessions,
		idleTimeout: idleTimeout,
		events:      nuts.NewEventEmitter(),
	}
}

// EndSession deletes a session and reports whether it existed
func (s *CleanupService) EndSession(id string) bool {
	if !s.sessions.Delete(id) {
		return false
	}
	s.emit(EventSessionEnded, id)
	return true
}

// ReapIdle deletes sessions idle for longer than the idle timeout
func (s *CleanupService) ReapIdle() []string {
	expired := s.sessions.ExpireIdle(s.idleTimeout)
	for _, id := range expired {
		s.emit(EventSessionExpired, id)
	}
	return expired
}

// Run reaps idle sessions every interval until ctx is done
func (s *CleanupService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if expired := s.ReapIdle(); len(expired) > 0 {
				nuts.L.Infof("[Cleanup] Reaped %d idle sessions", len(expired))
			}
		}
	}
}

// OnCleanup registers a named callback for a cleanup event. An empty name
// gets a generated one.
func (s *CleanupService) OnCleanup(event, name string, handler func(id string)) {
	if _, err := s.events.On(event, name, func(id string) {
		handler(id)
	}); err != nil {
		nuts.L.Warnf("[Cleanup] Failed to register handler %q for %s: %v", name, event, err)
	}
}

func (s *CleanupService) emit(event, id string) {
	if err := s.events.Emit(event, id); err != nil {
		nuts.L.Warnf("[Cleanup] Failed to notify %s handlers for session %s: %v", event, id, err)
	}
}
