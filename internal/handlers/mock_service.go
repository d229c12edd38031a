package handlers

import (
	"context"
	"net/http"
	"time"

	"status_monitor/internal/models"
	"status_monitor/internal/service"
	"status_monitor/internal/stream"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	genTokenToken string
	genTokenErr   error
	parseSubject  string
	parseErr      error

	lastGenUsername string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseSubject, m.parseErr
}

type mockWebhook struct {
	notice   models.IncidentNotice
	err      error
	calls    int
	lastBody []byte
}

func (m *mockWebhook) Process(ctx context.Context, body []byte) (models.IncidentNotice, error) {
	m.calls++
	m.lastBody = body
	return m.notice, m.err
}

type mockIncidentLog struct {
	resp        []models.LogRecord
	err         error
	lastFrom    time.Time
	lastTo      time.Time
	lastProduct string
}

func (m *mockIncidentLog) List(ctx context.Context, f service.LogFilter) ([]models.LogRecord, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastProduct = f.Product
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, hub *stream.Hub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, hub, nil, "")
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
