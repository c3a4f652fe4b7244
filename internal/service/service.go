package service

import (
	"context"
	"time"

	"sauna_api/internal/logger"
	"sauna_api/internal/models"
	"sauna_api/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Sauna exposes the single provisioned sauna: identity, status, schedules and programs.
type Sauna interface {
	Discover() models.SaunaID
	GetStatus(ctx context.Context, saunaID string) (models.Status, error)
	UpdateStatus(ctx context.Context, saunaID string, upd models.StatusUpdate) (models.Status, error)
	ListSchedules(ctx context.Context, saunaID string) ([]models.Schedule, error)
	AddSchedules(ctx context.Context, saunaID string, schedules []models.Schedule) ([]models.Schedule, error)
	DeleteSchedule(ctx context.Context, saunaID, scheduleID string) ([]models.Schedule, error)
	ListPrograms(ctx context.Context, saunaID string) ([]models.Program, error)
}

// EventLog exposes the append-only mutation log with filtering access.
type EventLog interface {
	List(ctx context.Context, saunaID string, f LogFilter) ([]models.SaunaEvent, error)
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "STATUS_UPDATE", "SCHEDULES_ADDED", "SCHEDULE_DELETED"
}

// Options carries the settings NewService needs beyond the repositories.
type Options struct {
	SaunaID    string // empty means generate one
	SigningKey string
	TokenTTL   time.Duration
	Log        *logger.Logger
}

type Service struct {
	Sauna
	EventLog
	Authorization
}

func NewService(repos *repository.Repository, opts Options) *Service {
	saunaID := opts.SaunaID
	if saunaID == "" {
		saunaID = NewSaunaID()
	}
	sauna := NewSaunaService(saunaID, repos.EventRepo, opts.Log)
	return &Service{
		Sauna:         sauna,
		EventLog:      NewEventLogService(sauna, repos.EventRepo),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}
