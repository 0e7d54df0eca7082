// FilePath: internal/repository/postgres/postgres.alert.go
package postgres

import (
	"context"

	"github.com/satyam-v3/InfraMind/internal/database"
	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/models"
)

var alertSchema = []string{
	`CREATE TABLE IF NOT EXISTS alerts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		severity TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		raised_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		resolved_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_alerts_active ON alerts(raised_at DESC) WHERE resolved_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS predictions (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		value TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		timeframe TEXT NOT NULL DEFAULT '',
		confidence INTEGER NOT NULL CHECK (confidence BETWEEN 0 AND 100)
	)`,
}

type AlertRepo struct {
	PostgresBaseRepo
}

func NewAlertRepository(db database.DB) *AlertRepo {
	repo := &PostgresBaseRepo{db: db}
	return &AlertRepo{PostgresBaseRepo: *repo}
}

// InitializeSchema creates the alert and prediction tables if missing.
func (r *AlertRepo) InitializeSchema(ctx context.Context) error {
	return r.initializeSchema(ctx, alertSchema)
}

// ListActive returns unresolved alerts, newest first.
func (r *AlertRepo) ListActive(ctx context.Context) ([]*models.Alert, error) {
	alerts := []*models.Alert{}
	query := `SELECT id, title, severity, location, raised_at FROM alerts WHERE resolved_at IS NULL ORDER BY raised_at DESC`

	if err := r.db.GetDB().SelectContext(ctx, &alerts, query); err != nil {
		return nil, errors.NewDatabaseError("failed to list alerts", err)
	}
	return alerts, nil
}

type PredictionRepo struct {
	PostgresBaseRepo
}

func NewPredictionRepository(db database.DB) *PredictionRepo {
	repo := &PostgresBaseRepo{db: db}
	return &PredictionRepo{PostgresBaseRepo: *repo}
}

func (r *PredictionRepo) List(ctx context.Context) ([]*models.Prediction, error) {
	predictions := []*models.Prediction{}
	query := `SELECT id, type, value, location, timeframe, confidence FROM predictions ORDER BY id ASC`

	if err := r.db.GetDB().SelectContext(ctx, &predictions, query); err != nil {
		return nil, errors.NewDatabaseError("failed to list predictions", err)
	}
	return predictions, nil
}
