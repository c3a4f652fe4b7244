package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// checkOrigin applies the CORS origin list to websocket handshakes.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || h.originAllowed(origin)
}

// @Summary      Stream sauna status
// @Description  Upgrades to a WebSocket and pushes {"type":"status","data":Status} every interval.
// @Tags         Status
// @Param        sauna_id     path   string  true   "Sauna ID"
// @Param        interval     query  string  false  "Go duration, max 10s"  example(2s)
// @Param        interval_ms  query  int     false  "Milliseconds, max 10000"
// @Failure      404  {object}  models.HTTPError
// @Router       /sauna/{sauna_id}/status/ws [get]
func (h *Handler) wsStatus(c *gin.Context) {
	id, ok := h.requireSauna(c)
	if !ok {
		return
	}
	interval := h.parseInterval(c)

	upgrader := websocket.Upgrader{CheckOrigin: h.checkOrigin}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendStatus(ctx, conn, id); err != nil {
		h.log.Infow("ws_write_failed_initial", "err", err)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		case <-ticker.C:
			if err := h.sendStatus(ctx, conn, id); err != nil {
				h.log.Infow("ws_write_failed", "err", err)
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

func (h *Handler) sendStatus(ctx context.Context, conn *websocket.Conn, saunaID string) error {
	st, err := h.services.GetStatus(ctx, saunaID)
	if err != nil {
		h.log.Errorw("ws_get_status_failed", "err", err)
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: detailInternal})
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: "status", Data: st})
}
