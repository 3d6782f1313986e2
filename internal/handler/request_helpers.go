package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/taskfarm/internal/logger"
)

// URL parameter names shared with the router
const (
	URLParamSessionID = "id"
	URLParamPlotID    = "plot"
)

// ValidationErrorResponse lists the offending fields of a rejected body
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// decodeRequest reads a single JSON object into req and runs struct
// validation. Unknown fields are rejected. On failure the 4xx response has
// been written and false is returned.
func decodeRequest(w http.ResponseWriter, r *http.Request, req any, op string) bool {
	log := logger.FromContext(r.Context()).With(LogFieldOperation, op)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgBodyTooLarge)
			return false
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Debug(LogMsgValidationFailed, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// plotIDParam parses the {plot} URL parameter.
// On failure the 400 response has already been written.
func plotIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	plotID, err := strconv.Atoi(chi.URLParam(r, URLParamPlotID))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlotID)
		return 0, false
	}
	return plotID, true
}

// queryString returns a pointer to the named query value, or nil when absent or empty
func queryString(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}
