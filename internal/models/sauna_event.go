package models

import "time"

// Event types written to the sauna event log.
const (
	EventStatusUpdate    = "STATUS_UPDATE"
	EventSchedulesAdded  = "SCHEDULES_ADDED"
	EventScheduleDeleted = "SCHEDULE_DELETED"
)

// SaunaEvent is a single log entry.
type SaunaEvent struct {
	EventID     string    `json:"event_id"`
	SaunaID     string    `json:"sauna_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // STATUS_UPDATE | SCHEDULES_ADDED | SCHEDULE_DELETED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
