package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"pharmago/internal/dto"
	"pharmago/internal/entities"
	"pharmago/internal/service/order"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pharmacyLocation := entities.GeoPoint{
		Lat: orderCreateDTO.PharmacyLocation.Lat,
		Lng: orderCreateDTO.PharmacyLocation.Lng,
	}
	deliveryLocation := entities.GeoPoint{
		Lat: orderCreateDTO.DeliveryLocation.Lat,
		Lng: orderCreateDTO.DeliveryLocation.Lng,
	}
	orderModifyEntity := entities.OrderModify{
		ID:               &orderCreateDTO.ID,
		PharmacyLocation: &pharmacyLocation,
		DeliveryLocation: &deliveryLocation,
	}
	if !orderCreateDTO.ReadyAt.IsZero() {
		orderModifyEntity.ReadyAt = &orderCreateDTO.ReadyAt
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	orderDTO := dto.Order{
		ID:      orderEntity.ID,
		Status:  orderEntity.Status.String(),
		ReadyAt: orderEntity.ReadyAt,
		RiderID: orderEntity.RiderID,
	}
	if orderEntity.PharmacyLocation != nil {
		orderDTO.PharmacyLocation = &dto.GeoPoint{
			Lat: orderEntity.PharmacyLocation.Lat,
			Lng: orderEntity.PharmacyLocation.Lng,
		}
	}
	if orderEntity.DeliveryLocation != nil {
		orderDTO.DeliveryLocation = &dto.GeoPoint{
			Lat: orderEntity.DeliveryLocation.Lat,
			Lng: orderEntity.DeliveryLocation.Lng,
		}
	}
	return orderDTO
}
