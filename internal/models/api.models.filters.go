// FilePath: internal/models/api.models.filters.go
package models

// RoomFilters defines the query parameters accepted by the room list
type RoomFilters struct {
	Query    string     `schema:"q"`
	Status   RoomStatus `schema:"status"`
	Building string     `schema:"building"`
	Offset   int        `schema:"offset"`
	Limit    int        `schema:"limit"`
}
