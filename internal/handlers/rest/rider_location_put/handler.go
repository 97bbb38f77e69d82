package rider_location_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"pharmago/internal/dto"
	"pharmago/internal/entities"
	"pharmago/internal/service/rider"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	riderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var locationDTO dto.RiderLocationUpdate
	if err := json.NewDecoder(r.Body).Decode(&locationDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	location := entities.GeoPoint{
		Lat: locationDTO.Lat,
		Lng: locationDTO.Lng,
	}

	err = h.service.UpdateLocation(r.Context(), riderID, location)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
