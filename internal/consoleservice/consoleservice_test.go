package consoleservice

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/satyam-v3/InfraMind/internal/catalog"
	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/models"
	"github.com/satyam-v3/InfraMind/internal/monitoring"
	"github.com/satyam-v3/InfraMind/internal/repository/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func campusStore() *catalog.Store {
	var rooms []models.Room
	for _, r := range fixture.CampusRooms(time.Now()) {
		rooms = append(rooms, *r)
	}
	return catalog.NewStore(rooms...)
}

func newService(t *testing.T, store *catalog.Store) *ConsoleService {
	t.Helper()
	repo := fixture.New(time.Now())
	svc := New(store, repo, repo.Predictions(), monitoring.NewService(), time.Hour)
	require.NoError(t, svc.Validate())
	return svc
}

func roomIDs(rows []models.RoomRow) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestValidate_MissingDependency(t *testing.T) {
	svc := &ConsoleService{Catalog: campusStore()}
	err := svc.Validate()
	require.Error(t, err)
	apiErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeInternal, apiErr.Type)
}

func TestHealth(t *testing.T) {
	ctx := context.Background()

	h := newService(t, catalog.NewStore()).Health(ctx)
	assert.Equal(t, "starting", h.Status)

	svc := newService(t, campusStore())
	_, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	h = svc.Health(ctx)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, 6, h.CatalogRooms)
	assert.Equal(t, 1, h.Sessions)
}

func TestListRooms_FilterAndPaginate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, campusStore())

	page, err := svc.ListRooms(ctx, models.RoomFilters{})
	require.NoError(t, err)
	assert.Equal(t, 6, page.Total)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, roomIDs(page.Rooms))
	assert.Equal(t, models.BadgeSuccess, page.Rooms[0].Badge)
	assert.Equal(t, "42/50", page.Rooms[0].OccupancyText)

	page, err = svc.ListRooms(ctx, models.RoomFilters{Query: "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "6"}, roomIDs(page.Rooms))

	page, err = svc.ListRooms(ctx, models.RoomFilters{Offset: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 6, page.Total)
	assert.Equal(t, []string{"3", "4", "5"}, roomIDs(page.Rooms))

	page, err = svc.ListRooms(ctx, models.RoomFilters{Offset: 10})
	require.NoError(t, err)
	assert.NotNil(t, page.Rooms)
	assert.Empty(t, page.Rooms)

	page, err = svc.ListRooms(ctx, models.RoomFilters{Limit: 1000, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Zero(t, page.Offset)
}

func TestListRooms_StatusAndBuilding(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, campusStore())

	page, err := svc.ListRooms(ctx, models.RoomFilters{Status: models.RoomStatusWarning})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "6"}, roomIDs(page.Rooms))

	page, err = svc.ListRooms(ctx, models.RoomFilters{Building: "a", Status: models.RoomStatusActive})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, roomIDs(page.Rooms))
}

func TestListRooms_EmptyCatalog(t *testing.T) {
	page, err := newService(t, catalog.NewStore()).ListRooms(context.Background(), models.RoomFilters{Query: "x"})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.NotNil(t, page.Rooms)
}

func TestGetRoomMetrics(t *testing.T) {
	ctx := context.Background()
	store := campusStore()
	store.Replace(append(store.ListRooms(), models.Room{ID: "9", Name: "Closet", Capacity: 0, Occupancy: 1}))
	svc := newService(t, store)

	metrics, err := svc.GetRoomMetrics(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 84, metrics.OccupancyPercent)
	assert.Equal(t, models.BadgeSuccess, metrics.StatusLabel)

	_, err = svc.GetRoomMetrics(ctx, "42")
	assert.True(t, errors.IsNotFound(err))

	_, err = svc.GetRoomMetrics(ctx, "9")
	assert.True(t, errors.IsInvalidData(err))
}

func TestSessions_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, campusStore())

	view, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	id := view.SessionID
	require.NotNil(t, view.Selected)
	assert.Equal(t, "1", view.Selected.ID)
	assert.Equal(t, 84, view.Metrics.OccupancyPercent)
	assert.Len(t, view.Rooms, 6)

	view, err = svc.SetSearchQuery(ctx, id, "201")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, roomIDs(view.Rooms))
	assert.Equal(t, "1", view.Selected.ID)

	view, err = svc.SelectRoom(ctx, id, "3")
	require.NoError(t, err)
	require.NotNil(t, view.SelectionApplied)
	assert.True(t, *view.SelectionApplied)
	assert.Equal(t, "3", view.Selected.ID)
	assert.True(t, view.Rooms[0].Selected)

	view, err = svc.SelectRoom(ctx, id, "nope")
	require.NoError(t, err)
	assert.False(t, *view.SelectionApplied)
	assert.Equal(t, "3", view.Selected.ID)

	_, err = svc.SelectRoom(ctx, id, "")
	assert.True(t, errors.IsValidation(err))

	require.NoError(t, svc.EndSession(ctx, id))
	_, err = svc.GetSession(ctx, id)
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.IsNotFound(svc.EndSession(ctx, id)))
}

func TestSession_InvalidSelectedRoomKeepsView(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStore(models.Room{ID: "9", Name: "Closet", Building: "Z", Capacity: 0, Occupancy: 3})
	svc := newService(t, store)

	view, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, view.Metrics)
	assert.NotEmpty(t, view.MetricsError)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "9", view.Selected.ID)
	assert.Len(t, view.Rooms, 1)
}

func TestSession_EmptyCatalog(t *testing.T) {
	view, err := newService(t, catalog.NewStore()).CreateSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, view.Selected)
	assert.Nil(t, view.Metrics)
	assert.Empty(t, view.Rooms)
}

func TestAlerts(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, campusStore())

	rows, err := svc.ListAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, models.BadgeDestructive, rows[0].Badge)

	sum, err := svc.AlertSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AlertSummary{High: 2, Medium: 1, Low: 1, Total: 4}, *sum)

	predictions, err := svc.ListPredictions(ctx)
	require.NoError(t, err)
	assert.Len(t, predictions, 3)
}

func TestExportRoomsXLSX(t *testing.T) {
	store := campusStore()
	store.Replace(append(store.ListRooms(), models.Room{ID: "9", Name: "Room 901", Building: "A", Capacity: 0}))
	svc := newService(t, store)

	data, err := svc.ExportRoomsXLSX(context.Background(), "room")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, exportHeader[0], rows[0][0])
	assert.Equal(t, "Room 101", rows[1][1])
	assert.Equal(t, "84", rows[1][6])
	assert.Equal(t, "invalid data", rows[5][6])
}

func TestCreateSession_RecordsEvent(t *testing.T) {
	svc := newService(t, campusStore())
	_, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, svc.Sessions.Len())

	rr := httptest.NewRecorder()
	svc.Monitoring.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rr.Body.String(), "inframind_sessions 1")
	assert.Contains(t, rr.Body.String(), `inframind_events_total{event="session_created"} 1`)
}

func TestWriteRow_ReportsCellFailures(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, writeRow(f, "Sheet1", 1, []interface{}{"ID", 42}))
	v, err := f.GetCellValue("Sheet1", "B1")
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	assert.Error(t, writeRow(f, "missing", 1, []interface{}{"ID"}))
	assert.Error(t, writeRow(f, "Sheet1", 0, []interface{}{"ID"}))
}
