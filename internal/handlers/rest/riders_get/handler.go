package riders_get

import (
	"encoding/json"
	"net/http"

	"pharmago/internal/dto"
	"pharmago/pkg/logger"
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
	riderEntities, err := h.service.GetRiders(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	riderDTOs := make([]dto.Rider, len(riderEntities))
	for i, riderEntity := range riderEntities {
		riderDTOs[i].ID = riderEntity.ID
		riderDTOs[i].Name = riderEntity.Name
		riderDTOs[i].Phone = riderEntity.Phone
		riderDTOs[i].Status = riderEntity.Status.String()
		riderDTOs[i].VehicleType = riderEntity.VehicleType.String()
		riderDTOs[i].Capacity = riderEntity.Capacity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(riderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
