package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"sauna_api/internal/models"
	"sauna_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errRangeOrder  = "'from' must be <= 'to'"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List sauna events
// @Description  Mutations recorded for this sauna. If 'to' is date-only it covers the whole day.
// @Tags         Events
// @Produce      json
// @Param        sauna_id  path   string  true   "Sauna ID"
// @Param        from      query  string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-01)
// @Param        to        query  string  false  "End of range, inclusive"  example(2025-08-31)
// @Param        type      query  string  false  "Event type"  Enums(STATUS_UPDATE,SCHEDULES_ADDED,SCHEDULE_DELETED)
// @Success      200  {object}  map[string]interface{}  "count, events"
// @Failure      400  {object}  models.HTTPError
// @Failure      404  {object}  models.HTTPError
// @Failure      500  {object}  models.HTTPError
// @Router       /sauna/{sauna_id}/events [get]
func (h *Handler) getEvents(c *gin.Context) {
	id, ok := h.requireSauna(c)
	if !ok {
		return
	}
	var (
		from      time.Time
		to        time.Time
		eventType = strings.ToUpper(strings.TrimSpace(c.Query("type")))
		err       error
	)
	if qs := c.Query("from"); qs != "" {
		if from, err = parseQueryTime(qs); err != nil {
			writeError(c, http.StatusBadRequest, errFromInvalid)
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		if to, err = parseQueryTime(qs); err != nil {
			writeError(c, http.StatusBadRequest, errToInvalid)
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		writeError(c, http.StatusBadRequest, errRangeOrder)
		return
	}

	events, err := h.services.EventLog.List(c.Request.Context(), id, service.LogFilter{
		From: from,
		To:   to,
		Type: eventType,
	})
	if err != nil {
		h.respondServiceError(c, err, "events_list_failed", "from", from, "to", to, "type", eventType)
		return
	}
	if events == nil {
		events = []models.SaunaEvent{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}
