package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"haccp-ledger/internal/config"
	"haccp-ledger/internal/handlers"
	"haccp-ledger/internal/ledger"
	"haccp-ledger/internal/models"
	"haccp-ledger/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Data     json.RawMessage `json:"data"`
	Degraded bool            `json:"degraded"`
	Audited  bool            `json:"audited"`
	Error    string          `json:"error"`
}

type testClient struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newTestClient(t *testing.T, backend storage.Backend) *testClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := ledger.New(storage.New(backend, zap.NewNop()), ledger.WithSeed(false))
	creds, err := handlers.NewCredentials("qa@plant.local", "s3cret!")
	require.NoError(t, err)

	cfg := &config.Config{SessionSecret: "test-session-secret"}
	return &testClient{t: t, handler: NewRouter(cfg, handlers.New(l, creds, zap.NewNop()), zap.NewNop())}
}

func (c *testClient) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	if cks := w.Result().Cookies(); len(cks) > 0 {
		c.cookies = cks
	}

	var env envelope
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func (c *testClient) login() {
	c.t.Helper()
	w, _ := c.do(http.MethodPost, "/login", gin.H{"username": "qa@plant.local", "password": "s3cret!"})
	require.Equal(c.t, http.StatusOK, w.Code)
}

func hazardBody() gin.H {
	return gin.H{
		"name":            "Staphylococcus toxin in dairy dessert",
		"type":            "Biological",
		"description":     "Temperature abuse during cooling",
		"severity":        "Critical",
		"likelihood":      "Possible",
		"controlMeasures": []string{"Blast chill within 90 minutes"},
		"responsible":     "Pastry Chef",
		"dateIdentified":  "2024-05-03",
		"status":          "Active",
	}
}

func TestHealthIsPublic(t *testing.T) {
	c := newTestClient(t, storage.NewMemoryBackend())
	w, _ := c.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mode":"durable"`)
}

func TestAPIRequiresLogin(t *testing.T) {
	c := newTestClient(t, storage.NewMemoryBackend())

	w, _ := c.do(http.MethodGet, "/api/hazards", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = c.do(http.MethodPost, "/login", gin.H{"username": "qa@plant.local", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c.login()
	w, _ = c.do(http.MethodGet, "/api/hazards", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = c.do(http.MethodPost, "/logout", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = c.do(http.MethodGet, "/api/hazards", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHazardAndCCPLifecycle(t *testing.T) {
	c := newTestClient(t, storage.NewMemoryBackend())
	c.login()

	w, env := c.do(http.MethodPost, "/api/hazards", hazardBody())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Audited)
	var hz models.Hazard
	require.NoError(t, json.Unmarshal(env.Data, &hz))
	assert.Equal(t, 12, hz.RiskScore)

	w, env = c.do(http.MethodPost, "/api/ccps", gin.H{
		"hazardId":        hz.ID,
		"step":            "Cooling",
		"criticalLimit":   "≤ 5 °C within 90 min",
		"dateEstablished": "2024-05-04",
		"status":          "Active",
		"compliance":      "Pending",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var ccp models.CCP
	require.NoError(t, json.Unmarshal(env.Data, &ccp))

	w, _ = c.do(http.MethodPatch, "/api/hazards/"+hz.ID, gin.H{"name": "Staphylococcal enterotoxin"})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = c.do(http.MethodGet, "/api/ccps?hazardId="+hz.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ccps []models.CCP
	require.NoError(t, json.Unmarshal(env.Data, &ccps))
	require.Len(t, ccps, 1)
	assert.Equal(t, "Staphylococcal enterotoxin", ccps[0].HazardName)

	w, _ = c.do(http.MethodDelete, "/api/hazards/"+hz.ID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = c.do(http.MethodDelete, "/api/ccps/"+ccp.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, env = c.do(http.MethodDelete, "/api/hazards/"+hz.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"removed":true}`, string(env.Data))

	w, _ = c.do(http.MethodDelete, "/api/hazards/"+hz.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = c.do(http.MethodGet, "/api/audit?module=HACCP", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []models.AuditLogEntry
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	require.Len(t, logs, 5)
	assert.Equal(t, models.CategoryDelete, logs[0].Category)
	for _, e := range logs {
		assert.Equal(t, "qa@plant.local", e.User)
	}
}

func TestInvalidPayloads(t *testing.T) {
	c := newTestClient(t, storage.NewMemoryBackend())
	c.login()

	body := hazardBody()
	body["severity"] = "Apocalyptic"
	w, env := c.do(http.MethodPost, "/api/hazards", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, env.Error)

	body = hazardBody()
	delete(body, "likelihood")
	w, _ = c.do(http.MethodPost, "/api/hazards", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = c.do(http.MethodPatch, "/api/hazards/nope", gin.H{"status": "Resolved"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHazardListFilters(t *testing.T) {
	c := newTestClient(t, storage.NewMemoryBackend())
	c.login()

	c.do(http.MethodPost, "/api/hazards", hazardBody())
	low := hazardBody()
	low["severity"] = "Low"
	low["dateIdentified"] = "2024-01-01"
	c.do(http.MethodPost, "/api/hazards", low)

	_, env := c.do(http.MethodGet, "/api/hazards?severity=Critical", nil)
	var list []models.Hazard
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, models.SeverityCritical, list[0].Severity)

	_, env = c.do(http.MethodGet, "/api/hazards?dateFrom=2024-01-01&dateTo=2024-01-31&responsible=pastry", nil)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "2024-01-01", list[0].DateIdentified)
}

func TestStatsAndAuditAppend(t *testing.T) {
	c := newTestClient(t, storage.NewMemoryBackend())
	c.login()

	w, env := c.do(http.MethodPost, "/api/audit", gin.H{
		"module":   "BRC",
		"user":     "someone-else",
		"action":   "Scheduled BRC audit",
		"severity": "Warning",
		"category": "View",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var entry models.AuditLogEntry
	require.NoError(t, json.Unmarshal(env.Data, &entry))
	assert.Equal(t, "qa@plant.local", entry.User)

	w, env = c.do(http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.ComplianceStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.PendingAudits)
	assert.Zero(t, stats.ComplianceScore)
}

func TestSupportingCollections(t *testing.T) {
	c := newTestClient(t, storage.NewMemoryBackend())
	c.login()

	w, _ := c.do(http.MethodPost, "/api/iso-standards", gin.H{
		"code": "ISO 22000", "title": "Food safety management systems", "status": "InProgress", "progress": 30,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = c.do(http.MethodPost, "/api/quality-checks", gin.H{
		"product": "Milk", "parameter": "pH", "value": "6.7", "passed": true, "checkedOn": "2024-05-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = c.do(http.MethodPost, "/api/training", gin.H{
		"employee": "A. Baker", "course": "Allergen awareness", "completedOn": "2024-04-20",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = c.do(http.MethodPost, "/api/documents", gin.H{
		"title": "Cleaning SOP", "module": "BRC", "revision": "2", "issuedOn": "2024-02-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	for _, path := range []string{"/api/iso-standards", "/api/quality-checks", "/api/training", "/api/documents"} {
		w, env := c.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		var items []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &items))
		assert.Len(t, items, 1, path)
	}
}

// quotaBackend accepts the availability probe and rejects writes once full is set.
type quotaBackend struct {
	*storage.MemoryBackend
	full bool
}

func (q *quotaBackend) Set(ctx context.Context, key string, v []byte) error {
	if q.full {
		return errors.New("quota exceeded")
	}
	return q.MemoryBackend.Set(ctx, key, v)
}

func TestFallbackStorageStillServes(t *testing.T) {
	c := newTestClient(t, nil)
	c.login()

	w, env := c.do(http.MethodPost, "/api/hazards", hazardBody())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.False(t, env.Degraded)

	w, _ = c.do(http.MethodGet, "/health", nil)
	assert.Contains(t, w.Body.String(), `"mode":"fallback"`)
}

func TestDegradedWriteIsReported(t *testing.T) {
	backend := &quotaBackend{MemoryBackend: storage.NewMemoryBackend()}
	c := newTestClient(t, backend)
	c.login()

	w, _ := c.do(http.MethodGet, "/health", nil)
	require.Contains(t, w.Body.String(), `"mode":"durable"`)

	backend.full = true
	w, env := c.do(http.MethodPost, "/api/hazards", hazardBody())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Degraded)

	w, _ = c.do(http.MethodGet, "/health", nil)
	assert.Contains(t, w.Body.String(), "quota exceeded")
}
