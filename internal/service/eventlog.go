package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"sauna_api/internal/models"
	"sauna_api/internal/repository"
)

// identity is the part of Sauna the event log needs to scope queries.
type identity interface {
	Discover() models.SaunaID
}

type EventLogService struct {
	sauna     identity
	eventRepo repository.EventRepo
}

func NewEventLogService(sauna identity, eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{sauna: sauna, eventRepo: eventRepo}
}

var ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f LogFilter) (LogFilter, error) {
	out := LogFilter{
		From: normalizeToUTC(f.From),
		To:   normalizeToUTC(f.To),
		Type: normalizeEventType(f.Type),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return LogFilter{}, ErrInvalidTimeRange
	}
	return out, nil
}

func (s *EventLogService) List(ctx context.Context, saunaID string, f LogFilter) ([]models.SaunaEvent, error) {
	if saunaID != s.sauna.Discover().SaunaID {
		return nil, ErrSaunaNotFound
	}
	nf, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, saunaID, nf.From, nf.To, nf.Type)
}
