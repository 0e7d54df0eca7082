// FilePath: internal/consoleservice/consoleservice.session.go
package consoleservice

import (
	"context"

	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/inspector"
	"github.com/satyam-v3/InfraMind/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateSession starts an inspector session selecting the first room
func (s *ConsoleService) CreateSession(ctx context.Context) (*models.SessionView, error) {
	id := s.Sessions.Create()
	s.Monitoring.RecordEvent("session_created", map[string]string{"session_id": id})
	s.Monitoring.SetSessions(s.Sessions.Len())
	nuts.L.Infof("[ConsoleService] Created session %s", id)
	return s.GetSession(ctx, id)
}

// GetSession renders the session's inspector against the current catalog
func (s *ConsoleService) GetSession(ctx context.Context, id string) (*models.SessionView, error) {
	return s.withSession(id, func(insp *inspector.Inspector) (*bool, error) {
		return nil, nil
	})
}

// SetSearchQuery replaces the session's search query
func (s *ConsoleService) SetSearchQuery(ctx context.Context, id, query string) (*models.SessionView, error) {
	return s.withSession(id, func(insp *inspector.Inspector) (*bool, error) {
		insp.SetSearchQuery(query)
		return nil, nil
	})
}

// SelectRoom selects a room for the session. Unknown room ids keep the
// previous selection and are reported through SelectionApplied.
func (s *ConsoleService) SelectRoom(ctx context.Context, id, roomID string) (*models.SessionView, error) {
	if roomID == "" {
		return nil, errors.NewValidationError("room_id is required", nil)
	}
	return s.withSession(id, func(insp *inspector.Inspector) (*bool, error) {
		applied := insp.SelectRoom(roomID)
		return &applied, nil
	})
}

// EndSession ends a session and discards its state
func (s *ConsoleService) EndSession(ctx context.Context, id string) error {
	if !s.Cleanup.EndSession(id) {
		return errors.NewNotFoundError("session not found", nil)
	}
	return nil
}

// withSession runs fn and renders the view under the session's lock, so the
// response reflects exactly the state fn left behind.
func (s *ConsoleService) withSession(id string, fn func(insp *inspector.Inspector) (*bool, error)) (*models.SessionView, error) {
	out := &models.SessionView{SessionID: id}
	err := s.Sessions.Do(id, func(insp *inspector.Inspector) error {
		applied, err := fn(insp)
		if err != nil {
			return err
		}
		out.SelectionApplied = applied

		view, err := insp.View()
		if err != nil && view.Selected != nil {
			s.recordInvalidData(view.Selected.ID, err)
		}
		out.InspectorView = view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
