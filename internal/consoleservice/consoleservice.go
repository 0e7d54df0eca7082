// FilePath: internal/consoleservice/consoleservice.go
package consoleservice

import (
	"context"
	"time"

	"github.com/satyam-v3/InfraMind/internal/catalog"
	"github.com/satyam-v3/InfraMind/internal/cleanup"
	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/models"
	"github.com/satyam-v3/InfraMind/internal/monitoring"
	"github.com/satyam-v3/InfraMind/internal/repository"
	"github.com/satyam-v3/InfraMind/internal/session"
	nuts "github.com/vaudience/go-nuts"
)

// ConsoleService contains the catalog, the display collaborators and the
// session machinery behind the room console API
type ConsoleService struct {
	Catalog     *catalog.Store
	Alerts      repository.AlertRepository
	Predictions repository.PredictionRepository
	Sessions    *session.Manager
	Cleanup     *cleanup.CleanupService
	Monitoring  *monitoring.Service
}

// New creates a new ConsoleService instance
func New(
	store *catalog.Store,
	alerts repository.AlertRepository,
	predictions repository.PredictionRepository,
	mon *monitoring.Service,
	idleTimeout time.Duration,
) *ConsoleService {
	svc := &ConsoleService{
		Catalog:     store,
		Alerts:      alerts,
		Predictions: predictions,
		Monitoring:  mon,
	}
	svc.Sessions = session.NewManager(store)
	svc.Cleanup = cleanup.New(svc.Sessions, idleTimeout)
	return svc
}

// Validate checks if all required dependencies are initialized
func (s *ConsoleService) Validate() error {
	if s.Catalog == nil {
		return ErrMissingDependency("catalog")
	}
	if s.Alerts == nil {
		return ErrMissingDependency("alerts")
	}
	if s.Predictions == nil {
		return ErrMissingDependency("predictions")
	}
	if s.Monitoring == nil {
		return ErrMissingDependency("monitoring")
	}
	return nil
}

func ErrMissingDependency(name string) error {
	return errors.NewInternalError("missing dependency: "+name, nil)
}

// Health reports the catalog and session state. The status is "starting"
// until the first catalog snapshot has been installed.
func (s *ConsoleService) Health(ctx context.Context) *models.HealthStatus {
	status := "ok"
	if s.Catalog.Version() == 0 {
		status = "starting"
	}
	return &models.HealthStatus{
		Status:           status,
		Version:          nuts.GetVersion(),
		CatalogVersion:   s.Catalog.Version(),
		CatalogRooms:     s.Catalog.Len(),
		CatalogUpdatedAt: s.Catalog.UpdatedAt(),
		Sessions:         s.Sessions.Len(),
	}
}
