package rider_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"pharmago/internal/dto"
	"pharmago/internal/entities"
	"pharmago/internal/service/rider"
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
	var riderUpdateDTO dto.RiderUpdate
	err := json.NewDecoder(r.Body).Decode(&riderUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	riderModifyEntity := entities.RiderModify{
		ID: &riderUpdateDTO.ID,
	}

	// Опциональные параметры
	if riderUpdateDTO.Name != nil {
		riderModifyEntity.Name = riderUpdateDTO.Name
	}
	if riderUpdateDTO.Phone != nil {
		riderModifyEntity.Phone = riderUpdateDTO.Phone
	}
	if riderUpdateDTO.Status != nil {
		statusType := entities.RiderStatusType(*riderUpdateDTO.Status)
		riderModifyEntity.Status = &statusType
	}
	if riderUpdateDTO.VehicleType != nil {
		vehicleType := entities.RiderVehicleType(*riderUpdateDTO.VehicleType)
		riderModifyEntity.VehicleType = &vehicleType
	}
	if riderUpdateDTO.Capacity != nil {
		riderModifyEntity.Capacity = riderUpdateDTO.Capacity
	}

	res, err := h.service.UpdateRider(r.Context(), riderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrMissingRequiredFields),
			errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidName),
			errors.Is(err, rider.ErrInvalidPhone),
			errors.Is(err, rider.ErrInvalidStatus),
			errors.Is(err, rider.ErrInvalidVehicle),
			errors.Is(err, rider.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Rider{
		ID:          res.ID,
		Name:        res.Name,
		Phone:       res.Phone,
		Status:      res.Status.String(),
		VehicleType: res.VehicleType.String(),
		Capacity:    res.Capacity,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
