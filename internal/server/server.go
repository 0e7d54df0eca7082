// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/satyam-v3/InfraMind/api"
	"github.com/satyam-v3/InfraMind/internal/catalog"
	"github.com/satyam-v3/InfraMind/internal/cleanup"
	"github.com/satyam-v3/InfraMind/internal/config"
	"github.com/satyam-v3/InfraMind/internal/consoleservice"
	"github.com/satyam-v3/InfraMind/internal/database"
	"github.com/satyam-v3/InfraMind/internal/monitoring"
	"github.com/satyam-v3/InfraMind/internal/repository"
	"github.com/satyam-v3/InfraMind/internal/repository/fixture"
	"github.com/satyam-v3/InfraMind/internal/repository/postgres"
	"github.com/satyam-v3/InfraMind/internal/repository/rediscache"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	console    *consoleservice.ConsoleService
	monitoring *monitoring.Service
	syncer     *catalog.Syncer
	repos      *repositories
	closers    []func() error
}

// repositories groups the providers selected by catalog.provider
type repositories struct {
	rooms       repository.RoomRepository
	alerts      repository.AlertRepository
	predictions repository.PredictionRepository
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		config: cfg,
		srv:    srv,
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.initialize(ctx); err != nil {
		return err
	}
	defer s.close()

	// Background loops
	go s.syncer.Run(ctx)
	go s.console.Cleanup.Run(ctx, s.config.Sessions.ReapInterval)

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown(cancel)
}

// initialize wires repositories, the catalog, sessions and routes. The
// catalog is warmed before the first request is served.
func (s *Server) initialize(ctx context.Context) error {
	s.monitoring = monitoring.NewService()

	repos, err := s.initializeRepositories(ctx)
	if err != nil {
		return err
	}
	s.repos = repos

	var cache catalog.SnapshotCache
	if s.config.Redis.Enabled {
		client, err := database.NewRedisClient(ctx, s.config.Redis)
		if err != nil {
			nuts.L.Warnf("[Server] Redis unavailable, running without snapshot cache: %v", err)
		} else {
			s.closers = append(s.closers, client.Close)
			cache = rediscache.New(client, s.config.Redis.SnapshotKey, s.config.Redis.SnapshotTTL)
		}
	}

	store := catalog.NewStore()
	s.syncer = catalog.NewSyncer(store, repos.rooms, cache, s.config.Catalog.RefreshInterval)
	s.console = consoleservice.New(store, repos.alerts, repos.predictions, s.monitoring, s.config.Sessions.IdleTimeout)
	if err := s.console.Validate(); err != nil {
		return err
	}

	s.setupCatalogHandlers()
	s.setupCleanupHandlers()

	if err := s.syncer.Warm(ctx); err != nil {
		nuts.L.Errorf("[Server] Catalog not warmed, serving an empty catalog until the next refresh: %v", err)
	}

	router := api.NewRouter(s.console, s.config.Server.AllowedOrigins)
	if s.config.Monitoring.AccessLog {
		s.srv.Handler = router.Handler(os.Stdout)
	} else {
		s.srv.Handler = router.Handler(nil)
	}
	return nil
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown(stopBackground context.CancelFunc) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) close() {
	for _, c := range s.closers {
		if err := c(); err != nil {
			nuts.L.Warnf("[Server] Error closing resource: %v", err)
		}
	}
}

// setupCatalogHandlers keeps sessions and gauges in step with the catalog
func (s *Server) setupCatalogHandlers() {
	s.syncer.OnUpdate("console", func(version uint64) {
		s.console.Sessions.ReconcileAll()
		s.monitoring.SetCatalog(s.console.Catalog.Len(), version)
		s.monitoring.RecordEvent("catalog_updated", map[string]string{
			"version": fmt.Sprint(version),
		})
	})
}

func (s *Server) setupCleanupHandlers() {
	// Handle explicit session ends
	s.console.Cleanup.OnCleanup(cleanup.EventSessionEnded, "monitoring", func(id string) {
		nuts.L.Infof("[Cleanup] Session %s ended", id)
		s.monitoring.RecordEvent("session_ended", map[string]string{
			"session_id": id,
		})
		s.monitoring.SetSessions(s.console.Sessions.Len())
	})

	// Handle idle expiry
	s.console.Cleanup.OnCleanup(cleanup.EventSessionExpired, "monitoring", func(id string) {
		nuts.L.Infof("[Cleanup] Session %s expired", id)
		s.monitoring.RecordEvent("session_expired", map[string]string{
			"session_id": id,
		})
		s.monitoring.SetSessions(s.console.Sessions.Len())
	})
}

// initializeRepositories creates the providers for the configured backend
func (s *Server) initializeRepositories(ctx context.Context) (*repositories, error) {
	switch s.config.Catalog.Provider {
	case config.ProviderPostgres:
		return s.initPostgresRepositories(ctx)
	default:
		nuts.L.Infof("[Server] Using the built-in campus fixture as catalog provider")
		repo := fixture.New(time.Now())
		return &repositories{rooms: repo, alerts: repo, predictions: repo.Predictions()}, nil
	}
}

func (s *Server) initPostgresRepositories(ctx context.Context) (*repositories, error) {
	appDB, err := initAppDB(ctx, s.config.Database.AppDB)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, appDB.Close)

	rooms := postgres.NewRoomRepository(appDB)
	alerts := postgres.NewAlertRepository(appDB)
	if err := rooms.InitializeSchema(ctx); err != nil {
		return nil, err
	}
	if err := alerts.InitializeSchema(ctx); err != nil {
		return nil, err
	}

	if s.config.Catalog.SeedFixture {
		if _, err := rooms.SeedIfEmpty(ctx, fixture.CampusRooms(time.Now())); err != nil {
			return nil, err
		}
	}

	return &repositories{
		rooms:       rooms,
		alerts:      alerts,
		predictions: postgres.NewPredictionRepository(appDB),
	}, nil
}

func initAppDB(ctx context.Context, cfg config.PostgresConfig) (database.DB, error) {
	wrappedDB, err := database.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AppDB: %w", err)
	}
	// Set up connection timeout
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := wrappedDB.Ping(pingCtx); err != nil {
		wrappedDB.Close()
		return nil, fmt.Errorf("failed to ping AppDB: %w", err)
	}
	return wrappedDB, nil
}
