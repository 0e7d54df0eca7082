// FilePath: internal/models/api.models.responses.go
package models

import "time"

// RoomPage is one page of the filtered room list
type RoomPage struct {
	Rooms          []RoomRow `json:"rooms"`
	Total          int       `json:"total"`
	Offset         int       `json:"offset"`
	Limit          int       `json:"limit"`
	CatalogVersion uint64    `json:"catalog_version"`
}

// HealthStatus is returned by the health endpoint
type HealthStatus struct {
	Status           string    `json:"status"`
	Version          string    `json:"version"`
	CatalogVersion   uint64    `json:"catalog_version"`
	CatalogRooms     int       `json:"catalog_rooms"`
	CatalogUpdatedAt time.Time `json:"catalog_updated_at"`
	Sessions         int       `json:"sessions"`
}

// SearchQueryRequest is the body of PUT /sessions/{id}/query
type SearchQueryRequest struct {
	Query string `json:"query"`
}

// SelectionRequest is the body of PUT /sessions/{id}/selection
type SelectionRequest struct {
	RoomID string `json:"room_id"`
}
