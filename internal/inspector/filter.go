// FilePath: internal/inspector/filter.go
package inspector

import (
	"strings"

	"github.com/satyam-v3/InfraMind/internal/models"
)

// Filter returns the rooms whose name or building contains query,
// case-insensitively, in their original order. An empty query matches every
// room. The result is never nil.
func Filter(query string, rooms []models.Room) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	q := strings.ToLower(query)
	for _, room := range rooms {
		if Matches(q, room) {
			out = append(out, room)
		}
	}
	return out
}

// Matches reports whether room matches an already lower-cased query.
func Matches(lowerQuery string, room models.Room) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(room.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(room.Building), lowerQuery)
}
