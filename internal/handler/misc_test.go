package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/taskfarm/internal/crop"
	"github.com/osse101/taskfarm/internal/eventlog"
	"github.com/osse101/taskfarm/internal/handler"
)

func TestHandleListCrops(t *testing.T) {
	rr := httptest.NewRecorder()
	handler.HandleListCrops(crop.Default())(rr, httptest.NewRequest(http.MethodGet, "/crops", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp handler.CropsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Crops, 6)
	assert.Equal(t, "wheat", resp.Crops[0].ID)
}

func TestHandleRecentEvents(t *testing.T) {
	repo := new(eventlog.MockRepository)
	sessionID := "farm-1"
	repo.On("Query", mock.Anything, mock.MatchedBy(func(f eventlog.EventFilter) bool {
		return f.SessionID != nil && *f.SessionID == sessionID &&
			f.EventType != nil && *f.EventType == "farm.plot.ready" &&
			f.Limit == 5 && f.Since != nil
	})).Return([]eventlog.Event{{ID: 7, EventType: "farm.plot.ready", SessionID: &sessionID}}, nil)

	h := handler.HandleRecentEvents(eventlog.NewService(repo))
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/events?session=farm-1&type=farm.plot.ready&limit=5&since=2024-01-01T00:00:00Z", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp handler.EventsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, int64(7), resp.Events[0].ID)
	repo.AssertExpectations(t)
}

func TestHandleRecentEvents_BadParams(t *testing.T) {
	h := handler.HandleRecentEvents(eventlog.NewService(eventlog.NewMemoryRepository(10)))

	for _, query := range []string{"limit=abc", "limit=-1", "since=yesterday"} {
		t.Run(query, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h(rr, httptest.NewRequest(http.MethodGet, "/events?"+query, nil))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestHandleRecentEvents_Empty(t *testing.T) {
	h := handler.HandleRecentEvents(eventlog.NewService(eventlog.NewMemoryRepository(10)))
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/events", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"events":[]}`, rr.Body.String())
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthEndpoints(t *testing.T) {
	rr := httptest.NewRecorder()
	handler.HandleHealthz()(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	handler.HandleReadyz()(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	down := pingerFunc(func(context.Context) error { return errors.New("no route to host") })
	rr = httptest.NewRecorder()
	handler.HandleReadyz(down)(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
