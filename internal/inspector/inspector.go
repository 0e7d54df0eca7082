// FilePath: internal/inspector/inspector.go
package inspector

import (
	"fmt"

	"github.com/satyam-v3/InfraMind/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// RoomLister is the read side of the room catalog. Each call must return a
// consistent snapshot.
type RoomLister interface {
	ListRooms() []models.Room
}

// Inspector holds the search and selection state of one UI session and
// derives everything else from the catalog on every read.
//
// An Inspector is not safe for concurrent use; session.Manager serialises
// access to it.
type Inspector struct {
	catalog     RoomLister
	searchQuery string
	selectedID  string
}

// New creates an inspector selecting the catalog's first room, if any.
func New(catalog RoomLister) *Inspector {
	i := &Inspector{catalog: catalog}
	if rooms := catalog.ListRooms(); len(rooms) > 0 {
		i.selectedID = rooms[0].ID
	}
	return i
}

// SetSearchQuery replaces the search query. The selection is left alone
// unless the selected room has left the catalog.
func (i *Inspector) SetSearchQuery(query string) {
	i.searchQuery = query
	i.Reconcile()
}

// SearchQuery returns the current search query.
func (i *Inspector) SearchQuery() string {
	return i.searchQuery
}

// SelectRoom selects the room with the given id and reports whether the
// selection changed hands to it. Ids unknown to the catalog are ignored and
// the previous selection is kept.
func (i *Inspector) SelectRoom(id string) bool {
	rooms := i.catalog.ListRooms()
	if _, ok := findRoom(rooms, id); !ok {
		nuts.L.Debugf("[Inspector] Ignoring selection of unknown room %q", id)
		i.reconcile(rooms)
		return false
	}
	i.selectedID = id
	return true
}

// SelectedRoomID returns the committed selection, which is empty only while
// the catalog is empty.
func (i *Inspector) SelectedRoomID() string {
	return i.selectedID
}

// Reconcile moves the selection to the catalog's first room when the
// selected room no longer exists.
func (i *Inspector) Reconcile() {
	i.reconcile(i.catalog.ListRooms())
}

func (i *Inspector) reconcile(rooms []models.Room) {
	if _, ok := findRoom(rooms, i.selectedID); ok {
		return
	}
	if len(rooms) == 0 {
		i.selectedID = ""
		return
	}
	if i.selectedID != "" {
		nuts.L.Infof("[Inspector] Room %s left the catalog, selecting %s", i.selectedID, rooms[0].ID)
	}
	i.selectedID = rooms[0].ID
}

// FilteredRooms returns the catalog rooms matching the search query.
func (i *Inspector) FilteredRooms() []models.Room {
	return Filter(i.searchQuery, i.catalog.ListRooms())
}

// SelectedRoom returns the selected room as it currently is in the catalog.
// ok is false only when the catalog is empty.
func (i *Inspector) SelectedRoom() (models.Room, bool) {
	return i.resolve(i.catalog.ListRooms())
}

// DerivedMetrics derives metrics for the selected room. ok is false when
// there is nothing selected; err is non-nil when the room's data cannot be
// derived from.
func (i *Inspector) DerivedMetrics() (metrics models.RoomMetrics, ok bool, err error) {
	room, ok := i.SelectedRoom()
	if !ok {
		return models.RoomMetrics{}, false, nil
	}
	metrics, err = DeriveMetrics(room)
	return metrics, true, err
}

// View renders the inspector from a single catalog snapshot. A derivation
// failure is returned alongside a view that still carries the rooms and the
// selected room, so callers can show a fallback for the metrics alone.
func (i *Inspector) View() (models.InspectorView, error) {
	rooms := i.catalog.ListRooms()
	view := models.InspectorView{
		SearchQuery: i.searchQuery,
		Rooms:       make([]models.RoomRow, 0, len(rooms)),
	}

	selected, ok := i.resolve(rooms)
	for _, room := range Filter(i.searchQuery, rooms) {
		view.Rooms = append(view.Rooms, NewRow(room, ok && room.ID == selected.ID))
	}
	if !ok {
		return view, nil
	}

	view.Selected = &selected
	metrics, err := DeriveMetrics(selected)
	if err != nil {
		view.MetricsError = err.Error()
		return view, err
	}
	view.Metrics = &metrics
	return view, nil
}

// NewRow renders a room for the inventory list.
func NewRow(room models.Room, selected bool) models.RoomRow {
	return models.RoomRow{
		Room:          room,
		Badge:         room.Status.Badge(),
		OccupancyText: fmt.Sprintf("%d/%d", room.Occupancy, room.Capacity),
		Selected:      selected,
	}
}

// resolve looks the selection up in rooms, falling back to the first room
// when the selected id is gone. It does not commit the fallback.
func (i *Inspector) resolve(rooms []models.Room) (models.Room, bool) {
	if len(rooms) == 0 {
		return models.Room{}, false
	}
	if room, ok := findRoom(rooms, i.selectedID); ok {
		return room, true
	}
	return rooms[0], true
}

func findRoom(rooms []models.Room, id string) (models.Room, bool) {
	if id == "" {
		return models.Room{}, false
	}
	for _, room := range rooms {
		if room.ID == id {
			return room, true
		}
	}
	return models.Room{}, false
}
