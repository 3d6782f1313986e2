package handler

import (
	"net/http"

	"github.com/osse101/taskfarm/internal/domain"
)

// CropLister exposes the crop catalog listing
type CropLister interface {
	List() []domain.CropDefinition
}

// CropsResponse lists every plantable crop
type CropsResponse struct {
	Crops []domain.CropDefinition `json:"crops"`
}

// HandleListCrops returns the crop catalog in registration order
//
// @Summary List plantable crops
// @Tags crops
// @Produce json
// @Success 200 {object} CropsResponse
// @Router /crops [get]
func HandleListCrops(catalog CropLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, CropsResponse{Crops: catalog.List()})
	}
}
