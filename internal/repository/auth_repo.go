package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"sauna_api/internal/models"
)

// ErrDuplicateUsername is returned by Create when the username is taken.
var ErrDuplicateUsername = errors.New("username already taken")

// UserRepository stores operator accounts in the users table.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash) VALUES (?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash FROM users WHERE username = ?`
)

// isUniqueViolation matches sqlite's constraint message; modernc does not
// export a typed error we could match on without importing its internals.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("user %q: %w", username, ErrDuplicateUsername)
		}
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id for user %q: %w", username, err)
	}
	return int(id), nil
}

// GetByUsername returns (nil, nil) when no such user exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	row := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username)
	switch err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}
