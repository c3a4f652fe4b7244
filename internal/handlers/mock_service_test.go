package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"sauna_api/internal/models"
	"sauna_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockSauna answers every call with the configured values; err applies to all
// id-scoped calls.
type mockSauna struct {
	id        string
	status    models.Status
	schedules []models.Schedule
	programs  []models.Program
	err       error

	lastUpdate models.StatusUpdate
	lastAdd    []models.Schedule
	lastDelete string
	calls      int
}

func (m *mockSauna) Discover() models.SaunaID {
	return models.SaunaID{SaunaID: m.id, ModelName: service.ModelName}
}
func (m *mockSauna) GetStatus(context.Context, string) (models.Status, error) {
	m.calls++
	return m.status, m.err
}
func (m *mockSauna) UpdateStatus(_ context.Context, _ string, upd models.StatusUpdate) (models.Status, error) {
	m.calls++
	m.lastUpdate = upd
	return m.status, m.err
}
func (m *mockSauna) ListSchedules(context.Context, string) ([]models.Schedule, error) {
	m.calls++
	return m.schedules, m.err
}
func (m *mockSauna) AddSchedules(_ context.Context, _ string, in []models.Schedule) ([]models.Schedule, error) {
	m.calls++
	m.lastAdd = in
	return m.schedules, m.err
}
func (m *mockSauna) DeleteSchedule(_ context.Context, _ string, scheduleID string) ([]models.Schedule, error) {
	m.calls++
	m.lastDelete = scheduleID
	return m.schedules, m.err
}
func (m *mockSauna) ListPrograms(context.Context, string) ([]models.Program, error) {
	m.calls++
	return m.programs, m.err
}

type mockEventLog struct {
	resp       []models.SaunaEvent
	err        error
	lastSauna  string
	lastFrom   time.Time
	lastTo     time.Time
	lastType   string
	listCalled int
}

func (m *mockEventLog) List(_ context.Context, saunaID string, f service.LogFilter) ([]models.SaunaEvent, error) {
	m.listCalled++
	m.lastSauna = saunaID
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

const testSaunaID = "abc123"

func newTestRouter(s *service.Service, opts Options) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, opts)
	return h.InitRoutes()
}

// newSaunaRouter wires a real SaunaService with no event storage behind the router.
func newSaunaRouter(opts Options) (*gin.Engine, *service.SaunaService) {
	sauna := service.NewSaunaService(testSaunaID, nil, nil)
	s := &service.Service{Sauna: sauna, Authorization: &mockAuth{parseID: 1}}
	return newTestRouter(s, opts), sauna
}

func do(r http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
