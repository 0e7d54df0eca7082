package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/satyam-v3/InfraMind/internal/config"
	"github.com/satyam-v3/InfraMind/internal/inspector"
	"github.com/satyam-v3/InfraMind/internal/repository/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Catalog:  config.CatalogConfig{Provider: config.ProviderFixture, RefreshInterval: time.Minute},
		Sessions: config.SessionsConfig{IdleTimeout: time.Hour, ReapInterval: time.Minute},
	}
}

func TestInitialize_FixtureProvider(t *testing.T) {
	s := New(testConfig())
	require.NoError(t, s.initialize(context.Background()))
	defer s.close()

	assert.Equal(t, 6, s.console.Catalog.Len())

	rr := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/rooms?q=auditorium", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"Auditorium"`)

	require.Eventually(t, func() bool {
		rr := httptest.NewRecorder()
		s.srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))
		return strings.Contains(rr.Body.String(), "inframind_catalog_rooms 6")
	}, time.Second, 5*time.Millisecond)
}

func TestCatalogUpdate_ReconcilesSessions(t *testing.T) {
	ctx := context.Background()
	s := New(testConfig())
	require.NoError(t, s.initialize(ctx))
	defer s.close()

	view, err := s.console.CreateSession(ctx)
	require.NoError(t, err)
	_, err = s.console.SelectRoom(ctx, view.SessionID, "6")
	require.NoError(t, err)

	repo, ok := s.repos.rooms.(*fixture.Repo)
	require.True(t, ok)
	require.True(t, repo.Remove("6"))
	require.NoError(t, s.syncer.Sync(ctx))

	selectedID := func() string {
		var id string
		_ = s.console.Sessions.Do(view.SessionID, func(insp *inspector.Inspector) error {
			id = insp.SelectedRoomID()
			return nil
		})
		return id
	}
	require.Eventually(t, func() bool { return selectedID() == "1" }, time.Second, 5*time.Millisecond)
}

func TestCleanupEvents_AreCounted(t *testing.T) {
	ctx := context.Background()
	s := New(testConfig())
	require.NoError(t, s.initialize(ctx))
	defer s.close()

	view, err := s.console.CreateSession(ctx)
	require.NoError(t, err)
	require.NoError(t, s.console.EndSession(ctx, view.SessionID))

	rr := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))
	body := rr.Body.String()
	assert.Contains(t, body, `inframind_events_total{event="session_ended"} 1`)
	assert.Contains(t, body, "inframind_sessions 0")
	assert.Contains(t, body, "inframind_catalog_version 1")
}

func TestInitialize_RedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, _ := strings.Cut(mr.Addr(), ":")
	p, err := strconv.Atoi(port)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Redis = config.RedisConfig{Enabled: true, Host: host, Port: p, SnapshotKey: "inframind:test", SnapshotTTL: time.Hour}

	s := New(cfg)
	require.NoError(t, s.initialize(context.Background()))
	defer s.close()

	assert.True(t, mr.Exists("inframind:test"))
}
