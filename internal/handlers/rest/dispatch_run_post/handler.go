package dispatch_run_post

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
	result, err := h.service.DispatchPass(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.DispatchRunResponse{
		Assignments:      make([]dto.BatchAssignment, len(result.Assignments)),
		UnassignedGroups: result.UnassignedGroups,
		ExcludedOrders:   result.ExcludedOrders,
	}
	for i, assignment := range result.Assignments {
		response.Assignments[i] = dto.BatchAssignment{
			AssignmentID: assignment.AssignmentID,
			RiderID:      assignment.RiderID,
			OrderIDs:     assignment.OrderIDs,
			AssignedAt:   assignment.AssignedAt,
			Deadline:     assignment.Deadline,
			VehicleType:  assignment.VehicleType.String(),
		}
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
