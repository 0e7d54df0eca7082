// FilePath: internal/models/models.alert.go
package models

import "time"

type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// Badge maps the severity to its display category. Unknown severities map to
// BadgeDefault.
func (s AlertSeverity) Badge() BadgeVariant {
	switch s {
	case SeverityHigh:
		return BadgeDestructive
	case SeverityMedium:
		return BadgeWarning
	case SeverityLow:
		return BadgeSecondary
	default:
		return BadgeDefault
	}
}

type Alert struct {
	ID       string        `json:"id" db:"id"`
	Title    string        `json:"title" db:"title"`
	Severity AlertSeverity `json:"severity" db:"severity"`
	Location string        `json:"location" db:"location"`
	RaisedAt time.Time     `json:"raised_at" db:"raised_at"`
}

// AlertSummary counts active alerts per severity.
type AlertSummary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Other  int `json:"other"`
	Total  int `json:"total"`
}

type PredictionType string

const (
	PredictionOccupancy PredictionType = "occupancy"
	PredictionEnergy    PredictionType = "energy"
)

type Prediction struct {
	ID         string         `json:"id" db:"id"`
	Type       PredictionType `json:"type" db:"type"`
	Value      string         `json:"value" db:"value"`
	Location   string         `json:"location" db:"location"`
	Timeframe  string         `json:"timeframe" db:"timeframe"`
	Confidence int            `json:"confidence" db:"confidence"`
}

// AlertRow is an alert as rendered in the alert list.
type AlertRow struct {
	Alert
	Badge BadgeVariant `json:"badge"`
}

// Summarize counts alerts per severity.
func Summarize(alerts []*Alert) AlertSummary {
	var sum AlertSummary
	for _, a := range alerts {
		if a == nil {
			continue
		}
		switch a.Severity {
		case SeverityHigh:
			sum.High++
		case SeverityMedium:
			sum.Medium++
		case SeverityLow:
			sum.Low++
		default:
			sum.Other++
		}
		sum.Total++
	}
	return sum
}
