package service

import "errors"

// Domain errors. Handlers map them to HTTP status codes.
var (
	ErrSaunaNotFound    = errors.New("sauna not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleConflict = errors.New("schedule id already exists")
	ErrEmptySchedules   = errors.New("at least one schedule is required")
	ErrInvalidSchedule  = errors.New("schedule id must not be empty")
)
