// FilePath: internal/models/models.view.go
package models

// RoomRow is a room as rendered in the inventory list.
type RoomRow struct {
	Room
	Badge         BadgeVariant `json:"badge"`
	OccupancyText string       `json:"occupancy_text"`
	Selected      bool         `json:"selected"`
}

// InspectorView is the display state of one inspector at a single catalog
// snapshot.
type InspectorView struct {
	SearchQuery  string       `json:"search_query"`
	Rooms        []RoomRow    `json:"rooms"`
	Selected     *Room        `json:"selected,omitempty"`
	Metrics      *RoomMetrics `json:"metrics,omitempty"`
	MetricsError string       `json:"metrics_error,omitempty"`
}

// SessionView is an InspectorView bound to its session.
type SessionView struct {
	SessionID        string `json:"session_id"`
	SelectionApplied *bool  `json:"selection_applied,omitempty"`
	InspectorView
}
