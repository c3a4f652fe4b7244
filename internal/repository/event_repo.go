package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sauna_api/internal/models"

	"github.com/google/uuid"
)

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

// occurredAtLayout is fixed-width so that text comparison in SQL orders like time.
const occurredAtLayout = "2006-01-02 15:04:05.000000000"

const (
	insertEventSQL = `INSERT INTO sauna_events (id, sauna_id, occurred_at, type, message, meta) VALUES (?, ?, ?, ?, ?, ?)`
	selectEventSQL = `SELECT id, sauna_id, occurred_at, type, message, meta FROM sauna_events`
)

func formatOccurredAt(t time.Time) string {
	return t.UTC().Format(occurredAtLayout)
}

func parseOccurredAt(s string) (time.Time, error) {
	t, err := time.ParseInLocation(occurredAtLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse occurred_at %q: %w", s, err)
	}
	return t, nil
}

// Append inserts a new event. If EventID or OccurredAt are empty, they’re set.
func (r *EventSQLite) Append(ctx context.Context, e models.SaunaEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	var metaPtr *string
	if e.Metadata != nil {
		b, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("marshal event metadata: %w", err)
		}
		s := string(b)
		metaPtr = &s
	}

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		e.SaunaID,
		formatOccurredAt(e.OccurredAt),
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Description,
		metaPtr,
	)
	if err != nil {
		return fmt.Errorf("insert event %s: %w", e.EventID, err)
	}
	return nil
}

// List returns the sauna's events filtered by [from, to] (inclusive) and/or type, ordered ASC.
func (r *EventSQLite) List(ctx context.Context, saunaID string, from, to time.Time, typ string) ([]models.SaunaEvent, error) {
	conds := []string{"sauna_id = ?"}
	args := []any{saunaID}

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, formatOccurredAt(from))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, formatOccurredAt(to))
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := selectEventSQL + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	out := make([]models.SaunaEvent, 0, 64)
	for rows.Next() {
		var (
			ev         models.SaunaEvent
			occurredAt string
			metaStr    sql.NullString
		)
		if err := rows.Scan(&ev.EventID, &ev.SaunaID, &occurredAt, &ev.Type, &ev.Description, &metaStr); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if ev.OccurredAt, err = parseOccurredAt(occurredAt); err != nil {
			return nil, err
		}

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				ev.Metadata = v
			} else {
				ev.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}
