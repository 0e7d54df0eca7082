// FilePath: internal/consoleservice/consoleservice.alert.go
package consoleservice

import (
	"context"

	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/models"
)

// ListAlerts returns the active alerts with their severity badges
func (s *ConsoleService) ListAlerts(ctx context.Context) ([]models.AlertRow, error) {
	alerts, err := s.activeAlerts(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]models.AlertRow, 0, len(alerts))
	for _, a := range alerts {
		if a == nil {
			continue
		}
		rows = append(rows, models.AlertRow{Alert: *a, Badge: a.Severity.Badge()})
	}
	return rows, nil
}

// AlertSummary counts the active alerts per severity
func (s *ConsoleService) AlertSummary(ctx context.Context) (*models.AlertSummary, error) {
	alerts, err := s.activeAlerts(ctx)
	if err != nil {
		return nil, err
	}
	sum := models.Summarize(alerts)
	return &sum, nil
}

// ListPredictions returns the current forecasts
func (s *ConsoleService) ListPredictions(ctx context.Context) ([]*models.Prediction, error) {
	predictions, err := s.Predictions.List(ctx)
	if err != nil {
		return nil, wrapUnavailable("failed to list predictions", err)
	}
	if predictions == nil {
		predictions = []*models.Prediction{}
	}
	return predictions, nil
}

func (s *ConsoleService) activeAlerts(ctx context.Context) ([]*models.Alert, error) {
	alerts, err := s.Alerts.ListActive(ctx)
	if err != nil {
		return nil, wrapUnavailable("failed to list alerts", err)
	}
	return alerts, nil
}

// wrapUnavailable keeps typed errors from the repositories and reports
// anything else as an unavailable collaborator.
func wrapUnavailable(msg string, err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	return errors.NewUnavailableError(msg, err)
}
