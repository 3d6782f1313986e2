package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/taskfarm/internal/eventlog"
)

// Query parameters accepted by the event log endpoint
const (
	QueryParamSession = "session"
	QueryParamType    = "type"
	QueryParamLimit   = "limit"
	QueryParamSince   = "since"
)

// EventsResponse wraps audit events, newest first
type EventsResponse struct {
	Events []eventlog.Event `json:"events"`
}

// HandleRecentEvents returns logged farm events filtered by session, type and time
//
// @Summary Recent farm audit events, newest first
// @Tags events
// @Produce json
// @Param session query string false "Session ID"
// @Param type query string false "Event type"
// @Param limit query int false "Maximum events"
// @Param since query string false "RFC3339 lower bound"
// @Success 200 {object} EventsResponse
// @Failure 400 {object} ErrorResponse
// @Router /events [get]
// @Security ApiKeyAuth
func HandleRecentEvents(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := eventlog.EventFilter{
			SessionID: queryString(r, QueryParamSession),
			EventType: queryString(r, QueryParamType),
		}
		if v := queryString(r, QueryParamLimit); v != nil {
			limit, err := strconv.Atoi(*v)
			if err != nil || limit < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			filter.Limit = limit
		}
		if v := queryString(r, QueryParamSince); v != nil {
			since, err := time.Parse(time.RFC3339, *v)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
				return
			}
			filter.Since = &since
		}

		events, err := svc.Recent(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetEventsFailed, err)
			return
		}
		if events == nil {
			events = []eventlog.Event{}
		}
		respondJSON(w, http.StatusOK, EventsResponse{Events: events})
	}
}
