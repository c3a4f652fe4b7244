package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"sauna_api/internal/models"
	"sauna_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil, Options{})

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func wsURL(t *testing.T, base, path string, q url.Values) string {
	t.Helper()
	u, err := url.Parse(base)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	u.Scheme = "ws"
	u.Path = path
	u.RawQuery = q.Encode()
	return u.String()
}

func TestWebSocket_StatusStream_InitialAndPeriodic(t *testing.T) {
	st := models.DefaultStatus()
	st.SaunaID = testSaunaID
	st.State = models.StateRunning
	st.CurrentTemperature = 72.5
	s := &service.Service{Sauna: &mockSauna{id: testSaunaID, status: st}}

	srv := httptest.NewServer(newTestRouter(s, Options{}))
	defer srv.Close()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	u := wsURL(t, srv.URL, "/sauna/"+testSaunaID+"/status/ws", url.Values{"interval_ms": {"20"}})
	conn, _, err := dialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	// Read initial status
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "status" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var got models.Status
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("unmarshal status: %v", err)
	}
	if got.State != models.StateRunning || got.CurrentTemperature != 72.5 || got.SaunaID != testSaunaID {
		t.Fatalf("unexpected status: %+v", got)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "status" {
		t.Fatalf("expected type=status, got %+v", env)
	}
}

func TestWebSocket_ForeignSauna_404BeforeUpgrade(t *testing.T) {
	s := &service.Service{Sauna: &mockSauna{id: testSaunaID}}
	srv := httptest.NewServer(newTestRouter(s, Options{}))
	defer srv.Close()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	_, resp, err := dialer.Dial(wsURL(t, srv.URL, "/sauna/nope/status/ws", nil), nil)
	if err == nil {
		t.Fatal("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 response, got %+v", resp)
	}
}

func TestWebSocket_InitialGetStatusError_SendsErrorAndCloses(t *testing.T) {
	s := &service.Service{Sauna: &mockSauna{id: testSaunaID, err: errors.New("boom")}}
	srv := httptest.NewServer(newTestRouter(s, Options{}))
	defer srv.Close()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(t, srv.URL, "/sauna/"+testSaunaID+"/status/ws", nil), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read error envelope: %v", err)
	}
	if env.Type != "error" || env.Error != detailInternal {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	// The server closes right after the failed fetch
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}
