package orders_batch_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"pharmago/internal/dto"
	"pharmago/internal/geo"
	"pharmago/internal/service/batching"
	"pharmago/internal/service/order"
	"pharmago/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	orders   OrderService
	batching BatchingService
}

func New(log handlerLogger, orders OrderService, batchingService BatchingService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		orders:   orders,
		batching: batchingService,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var batchRequestDTO dto.BatchOrdersRequest
	err := json.NewDecoder(r.Body).Decode(&batchRequestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntities, err := h.orders.GetOrdersByIDs(r.Context(), batchRequestDTO.OrderIDs)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	assignment, err := h.batching.BatchOrders(r.Context(), orderEntities)
	if err != nil {
		switch {
		case errors.Is(err, batching.ErrEmptyGroup),
			errors.Is(err, batching.ErrInvalidConfig),
			errors.Is(err, geo.ErrInvalidCoordinate):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, batching.ErrOrderNotReady),
			errors.Is(err, batching.ErrNotBatchable),
			errors.Is(err, batching.ErrNoAvailableRider):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.BatchAssignment{
		AssignmentID: assignment.AssignmentID,
		RiderID:      assignment.RiderID,
		OrderIDs:     assignment.OrderIDs,
		AssignedAt:   assignment.AssignedAt,
		Deadline:     assignment.Deadline,
		VehicleType:  assignment.VehicleType.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
