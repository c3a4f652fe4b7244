package repository

import (
	"context"
	"database/sql"
	"time"

	"sauna_api/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.SaunaEvent) error
	List(ctx context.Context, saunaID string, from, to time.Time, typ string) ([]models.SaunaEvent, error)
}

type Repository struct {
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
