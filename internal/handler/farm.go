package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/farm"
	"github.com/osse101/taskfarm/internal/logger"
)

// SessionStore is the session registry the farm handlers operate on
type SessionStore interface {
	Create(ctx context.Context) (*farm.Session, error)
	Get(id string) (*farm.Session, error)
	Delete(id string) error
}

// PlantRequest represents a request to plant a seed
type PlantRequest struct {
	CropID string `json:"crop_id" validate:"required,max=64,cropid"`
}

// WeatherRequest represents a request to change the weather
type WeatherRequest struct {
	Weather string `json:"weather" validate:"required,weather"`
}

// SeasonRequest represents a request to change the season
type SeasonRequest struct {
	Season string `json:"season" validate:"required,season"`
}

// FarmStateResponse is returned by every farm endpoint that changes or reads state
type FarmStateResponse struct {
	SessionID string           `json:"session_id"`
	State     domain.FarmState `json:"state"`
}

// FarmHandler handles farm session HTTP requests
type FarmHandler struct {
	sessions SessionStore
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(sessions SessionStore) *FarmHandler {
	return &FarmHandler{sessions: sessions}
}

// session resolves the {id} URL parameter. On failure the response has been written.
func (h *FarmHandler) session(w http.ResponseWriter, r *http.Request) (*farm.Session, bool) {
	id := chi.URLParam(r, URLParamSessionID)
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingSessionID)
		return nil, false
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		respondServiceError(w, r, "Get session", err)
		return nil, false
	}
	return s, true
}

func respondState(w http.ResponseWriter, status int, s *farm.Session) {
	respondJSON(w, status, FarmStateResponse{SessionID: s.ID(), State: s.GetState()})
}

// HandleCreateSession starts a new farm
//
// @Summary Start a new farm session
// @Tags sessions
// @Produce json
// @Success 201 {object} FarmStateResponse
// @Router /sessions [post]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Create(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateSessionFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgSessionCreated, logger.AttrKeySessionID, s.ID())
	respondState(w, http.StatusCreated, s)
}

// HandleGetState returns the current farm snapshot
//
// @Summary Current farm snapshot
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} FarmStateResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/state [get]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	respondState(w, http.StatusOK, s)
}

// HandleDeleteSession ends a farm
//
// @Summary End a farm session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, URLParamSessionID)
	if err := h.sessions.Delete(id); err != nil {
		respondServiceError(w, r, "Delete session", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgSessionDeletedAPI, logger.AttrKeySessionID, id)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionDeleted})
}

// HandlePlant plants a seed on an empty plot
//
// @Summary Plant a crop on an empty plot
// @Tags plots
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param plot path int true "Plot index"
// @Param request body PlantRequest true "Crop to plant"
// @Success 200 {object} FarmStateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/plots/{plot}/plant [post]
// @Security ApiKeyAuth
func (h *FarmHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	plotID, ok := plotIDParam(w, r)
	if !ok {
		return
	}

	var req PlantRequest
	if !decodeRequest(w, r, &req, "Plant") {
		return
	}

	if err := s.Plant(r.Context(), plotID, req.CropID); err != nil {
		respondServiceError(w, r, "Plant", err)
		return
	}
	respondState(w, http.StatusOK, s)
}

// HandleAccelerate spends sun energy to speed up a growing plot
//
// @Summary Spend sun energy to add progress to a growing plot
// @Tags plots
// @Produce json
// @Param id path string true "Session ID"
// @Param plot path int true "Plot index"
// @Success 200 {object} FarmStateResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/plots/{plot}/accelerate [post]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleAccelerate(w http.ResponseWriter, r *http.Request) {
	h.plotAction(w, r, "Accelerate", (*farm.Session).Accelerate)
}

// HandleHarvest collects a ready crop
//
// @Summary Harvest a ready plot
// @Tags plots
// @Produce json
// @Param id path string true "Session ID"
// @Param plot path int true "Plot index"
// @Success 200 {object} FarmStateResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/plots/{plot}/harvest [post]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	h.plotAction(w, r, "Harvest", (*farm.Session).Harvest)
}

// plotAction runs a body-less operation against the {plot} of the {id} session
func (h *FarmHandler) plotAction(
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	action func(*farm.Session, context.Context, int) error,
) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	plotID, ok := plotIDParam(w, r)
	if !ok {
		return
	}

	if err := action(s, r.Context(), plotID); err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondState(w, http.StatusOK, s)
}

// HandleSetWeather changes the weather over the farm
//
// @Summary Change the weather
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body WeatherRequest true "New weather"
// @Success 200 {object} FarmStateResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /sessions/{id}/weather [put]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleSetWeather(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req WeatherRequest
	if !decodeRequest(w, r, &req, "Set weather") {
		return
	}

	weather, err := domain.ParseWeather(req.Weather)
	if err == nil {
		err = s.SetWeather(r.Context(), weather)
	}
	if err != nil {
		respondServiceError(w, r, "Set weather", err)
		return
	}
	respondState(w, http.StatusOK, s)
}

// HandleSetSeason changes the season label
//
// @Summary Change the season label
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SeasonRequest true "New season"
// @Success 200 {object} FarmStateResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /sessions/{id}/season [put]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleSetSeason(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SeasonRequest
	if !decodeRequest(w, r, &req, "Set season") {
		return
	}

	season, err := domain.ParseSeason(req.Season)
	if err == nil {
		err = s.SetSeason(r.Context(), season)
	}
	if err != nil {
		respondServiceError(w, r, "Set season", err)
		return
	}
	respondState(w, http.StatusOK, s)
}
