package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/evangelism-crm/internal/factory"
	"github.com/xavierca1/evangelism-crm/internal/infra/auth"
	"github.com/xavierca1/evangelism-crm/internal/infra/database"
	"github.com/xavierca1/evangelism-crm/internal/infra/http/middleware"
	"github.com/xavierca1/evangelism-crm/internal/random"
	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

const (
	testClientID = "demo-church-lagos"
	testEmail    = "admin@graceevangelical.demo"
	testPassword = "Demo@2025"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type recordingDispatcher struct {
	mu   sync.Mutex
	jobs []usecase.CallJob
}

func (d *recordingDispatcher) DispatchCall(_ context.Context, job usecase.CallJob) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, job)
	return nil
}

type testServer struct {
	handler    http.Handler
	store      *database.MemoryStore
	dispatcher *recordingDispatcher
}

func seedInput() usecase.SeedDemoInput {
	return usecase.SeedDemoInput{
		ClientID:      testClientID,
		ChurchName:    "Grace Evangelical Ministries",
		AdminEmail:    testEmail,
		AdminPassword: testPassword,
		Converts:      30,
		Workers:       5,
		Services:      6,
		BatchSize:     usecase.DefaultBatchSize,
		Seed:          42,
	}
}

func newTestServer(t *testing.T, resetLimit int) *testServer {
	t.Helper()
	log := logger.NewTestLogger(t)
	store := database.NewMemoryStore(database.WithCollections("users", "converts"))

	seeder := usecase.NewSeedDemoUseCase(store, plainHasher{}, log)
	_, err := seeder.Execute(context.Background(), seedInput())
	require.NoError(t, err)

	f := factory.New(random.NewSource(7), testClientID, time.Now)
	dispatcher := &recordingDispatcher{}
	authUC := usecase.NewAuthUseCase(store, plainHasher{}, auth.NewJWTIssuer("test-secret", time.Hour), testClientID)
	stats := usecase.NewStatsUseCase(store, testClientID)

	rt := &Router{
		Auth:          NewAuthHandler(authUC, log),
		Converts:      NewConvertHandler(usecase.NewConvertUseCase(store, f, "Grace Evangelical Ministries", log), log),
		Dashboard:     NewDashboardHandler(stats, log),
		Care:          NewCareHandler(usecase.NewHealthScoreUseCase(store, f), usecase.NewAlertUseCase(store, testClientID), log),
		Voice:         NewVoiceHandler(usecase.NewVoiceAgentUseCase(store, f, dispatcher, log), log),
		Demo:          NewDemoHandler(usecase.NewResetDemoUseCase(store, seeder, log), stats, seedInput(), log),
		Health:        NewHealthHandler(store, "memory", nil),
		Authenticator: authUC,
		ResetLimiter:  middleware.NewRateLimiter(resetLimit, time.Minute),
	}
	return &testServer{handler: rt.Handler(), store: store, dispatcher: dispatcher}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    testEmail,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out usecase.LoginOutput
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, 5)

	rec := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	out := decodeBody[HealthResponse](t, rec)
	assert.Equal(t, "healthy", out.Status)
	assert.Equal(t, "healthy", out.Dependencies["store"])
	assert.Equal(t, "not configured", out.Dependencies["rabbitmq"])
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, 5)
	s.do(t, http.MethodGet, "/api/demo/info", "", nil)

	rec := s.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestDemoInfoIsPublic(t *testing.T) {
	s := newTestServer(t, 5)

	rec := s.do(t, http.MethodGet, "/api/demo/info", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	info := decodeBody[usecase.DemoInfo](t, rec)
	assert.Equal(t, "Grace Evangelical Ministries", info.Church)
	assert.Equal(t, testEmail, info.Credentials.AdminEmail)
	assert.Equal(t, testPassword, info.Credentials.AdminPassword)
	assert.NotEmpty(t, info.Features)
}

func TestDemoStats(t *testing.T) {
	s := newTestServer(t, 5)

	rec := s.do(t, http.MethodGet, "/api/demo/stats", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeBody[usecase.DemoStats](t, rec)
	assert.Equal(t, "success", out.Status)
	assert.Equal(t, 30, out.Stats["converts"])
	assert.Equal(t, 6, out.Stats["users"])
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	s := newTestServer(t, 5)

	for _, path := range []string{"/api/auth/me", "/api/converts", "/api/dashboard/stats", "/api/voice-agent/calls"} {
		rec := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := s.do(t, http.MethodGet, "/api/converts", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t, 5)

	t.Run("wrong password", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    testEmail,
			"password": "nope-nope",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody[map[string]interface{}](t, rec)
		assert.Equal(t, usecase.CodeUnauthorized, body["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("me", func(t *testing.T) {
		token := s.login(t)
		rec := s.do(t, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), testEmail)
		assert.NotContains(t, rec.Body.String(), "hashed:")
	})
}

func TestUsersNeverExposeHashes(t *testing.T) {
	s := newTestServer(t, 5)
	token := s.login(t)

	rec := s.do(t, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hashed")

	rec = s.do(t, http.MethodGet, "/api/users/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConvertRoutes(t *testing.T) {
	s := newTestServer(t, 5)
	token := s.login(t)

	rec := s.do(t, http.MethodGet, "/api/converts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]map[string]interface{}](t, rec)
	assert.Len(t, list, 30)

	rec = s.do(t, http.MethodPost, "/api/converts", token, map[string]string{"first_name": "Ada"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]interface{}](t, rec)
	assert.Equal(t, usecase.CodeInvalidInput, body["error"])
	assert.NotEmpty(t, body["fields"])

	rec = s.do(t, http.MethodPost, "/api/converts", token, map[string]string{
		"first_name": "Chiamaka",
		"last_name":  "Obi",
		"phone":      "08031234567",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[map[string]interface{}](t, rec)
	id := created["id"].(string)

	rec = s.do(t, http.MethodPatch, "/api/converts/"+id, token, map[string]string{"stage": "in_classes"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "in_classes", decodeBody[map[string]interface{}](t, rec)["stage"])

	rec = s.do(t, http.MethodGet, "/api/health-scores/"+id, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/converts/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/converts/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardRoutes(t *testing.T) {
	s := newTestServer(t, 5)
	token := s.login(t)

	rec := s.do(t, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[usecase.DashboardStats](t, rec)
	assert.Equal(t, 30, stats.TotalConverts)

	for _, path := range []string{
		"/api/dashboard/stage-distribution",
		"/api/dashboard/recent-activity",
		"/api/analytics/converts",
		"/api/analytics/voice-calls",
		"/api/services",
		"/api/health-scores",
	} {
		rec := s.do(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAlertRoutes(t *testing.T) {
	s := newTestServer(t, 5)
	token := s.login(t)

	rec := s.do(t, http.MethodGet, "/api/alerts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	alerts := decodeBody[[]usecase.AlertView](t, rec)
	if len(alerts) == 0 {
		t.Skip("seed produced no at-risk converts")
	}
	id := alerts[0].ID

	rec = s.do(t, http.MethodPatch, "/api/alerts/"+id, token, map[string]string{"status": "closed"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/alerts/"+id, token, map[string]string{"status": "resolved"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "resolved", decodeBody[map[string]interface{}](t, rec)["status"])

	rec = s.do(t, http.MethodGet, "/api/alerts/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decodeBody[map[string]interface{}](t, rec)
	assert.NotNil(t, detail["convert"])
}

func TestVoiceRoutes(t *testing.T) {
	s := newTestServer(t, 5)
	token := s.login(t)

	rec := s.do(t, http.MethodGet, "/api/converts", token, nil)
	convertID := decodeBody[[]map[string]interface{}](t, rec)[0]["id"].(string)

	rec = s.do(t, http.MethodGet, "/api/voice-agent/config", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/voice-agent/calls", token, map[string]string{"convert_id": convertID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	callID := decodeBody[map[string]interface{}](t, rec)["id"].(string)

	rec = s.do(t, http.MethodPost, "/api/voice-agent/calls/"+callID+"/simulate", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sim := decodeBody[usecase.SimulationResult](t, rec)
	assert.Len(t, sim.Conversation, 8)
	assert.Equal(t, "interested", sim.Summary.Outcome)

	rec = s.do(t, http.MethodGet, "/api/voice-agent/calls/"+callID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/voice-agent/make-call", token, map[string]string{"convert_id": convertID})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	require.Len(t, s.dispatcher.jobs, 1)
	assert.Equal(t, convertID, s.dispatcher.jobs[0].ConvertID)

	rec = s.do(t, http.MethodPost, "/api/voice-agent/make-call", token, map[string]string{"convert_id": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/voice-agent/scripts", token, map[string]interface{}{
		"name": "Birthday Call", "content": "Happy birthday!", "purpose": "care", "is_active": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	scriptID := decodeBody[map[string]interface{}](t, rec)["id"].(string)

	rec = s.do(t, http.MethodDelete, "/api/voice-agent/scripts/"+scriptID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodDelete, "/api/voice-agent/scripts/"+scriptID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDemoResetIsRateLimited(t *testing.T) {
	s := newTestServer(t, 1)

	rec := s.do(t, http.MethodPost, "/api/demo/reset", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out resetResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, "success", out.Status)
	assert.Equal(t, 30, out.Seeded["converts"])
	assert.Positive(t, out.RecordsRemoved)

	rec = s.do(t, http.MethodPost, "/api/demo/reset", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestDemoResetSurvivesClientDisconnect(t *testing.T) {
	s := newTestServer(t, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/demo/reset", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/demo/stats", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody[usecase.DemoStats](t, rec)
	assert.Equal(t, 30, out.Stats["converts"])
	assert.Equal(t, 6, out.Stats["users"])
}

func TestDemoResetLimitIgnoresForwardedFor(t *testing.T) {
	s := newTestServer(t, 1)

	reset := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/demo/reset", nil)
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, reset("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, reset("10.0.0.2"))
}
