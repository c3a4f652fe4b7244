package models

import "time"

// Frequency tells how often a schedule repeats.
type Frequency string

const (
	FrequencyOnce     Frequency = "once"
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyWeekdays Frequency = "weekdays"
	FrequencyWeekends Frequency = "weekends"
)

// Schedule is a future-dated instruction to run a Program on a sauna.
type Schedule struct {
	ID            string    `json:"id" binding:"required" example:"df67888a21123f123123ee123"`
	User          string    `json:"user" example:"owner@example.com"`
	Sauna         string    `json:"sauna"`
	FirstFireTime time.Time `json:"first_fire_time" binding:"required" example:"2021-06-27T05:03:15+11:00"`
	Frequency     Frequency `json:"frequency" binding:"required,oneof=once daily weekly weekdays weekends" example:"once"`
	Program       Program   `json:"program"`
}

// Clone returns a deep copy of s.
func (s Schedule) Clone() Schedule {
	s.Program = s.Program.Clone()
	return s
}

// CloneSchedules deep-copies a schedule list, never returning nil.
func CloneSchedules(in []Schedule) []Schedule {
	out := make([]Schedule, 0, len(in))
	for _, s := range in {
		out = append(out, s.Clone())
	}
	return out
}
