package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/taskfarm/internal/crop"
	"github.com/osse101/taskfarm/internal/eventlog"
	"github.com/osse101/taskfarm/internal/handler"
	"github.com/osse101/taskfarm/internal/session"
	"github.com/osse101/taskfarm/internal/sse"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func newTestRouter(t *testing.T, cfg Config) chi.Router {
	t.Helper()
	catalog := crop.Default()
	manager := session.NewManager(catalog, 4, time.Hour)
	t.Cleanup(manager.Close)

	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	return NewRouter(cfg, Dependencies{
		Sessions: manager,
		Catalog:  catalog,
		EventLog: eventlog.NewService(eventlog.NewMemoryRepository(16)),
		Hub:      hub,
	})
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func TestRouter_FarmLifecycle(t *testing.T) {
	r := newTestRouter(t, Config{})

	rec := serve(r, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	var created handler.FarmStateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	base := "/api/v1/sessions/" + created.SessionID

	rec = serve(r, http.MethodPost, base+"/plots/3/plant", `{"crop_id":"carrot"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, http.MethodPut, base+"/weather", `{"weather":"snowy"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, http.MethodGet, base+"/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var state handler.FarmStateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.Equal(t, 47, state.State.Balance)
	assert.Equal(t, "carrot", state.State.Plots[3].CropID)

	rec = serve(r, http.MethodDelete, base, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, http.MethodGet, base+"/state", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	r := newTestRouter(t, Config{APIKey: "k"})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/readyz", "").Code)

	rec := serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	rec = serve(r, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/sessions/{id}/plots/{plot}/harvest")

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/v1/crops", "").Code)
}

func TestRouter_CropsAndEvents(t *testing.T) {
	r := newTestRouter(t, Config{})

	rec := serve(r, http.MethodGet, "/api/v1/crops", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sunflower"`)

	rec = serve(r, http.MethodGet, "/api/v1/events?limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"events":[]}`, rec.Body.String())
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/crops", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	req.Header.Set(HeaderRequestID, "req-42")

	rec := httptest.NewRecorder()
	loggingMiddleware(okHandler()).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, "request_id=req-42")
	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
}
