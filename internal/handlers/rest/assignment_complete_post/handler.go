package assignment_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"pharmago/internal/dto"
	"pharmago/internal/service/assignment"
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
	idStr := mux.Vars(r)["id"]
	assignmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.CompleteAssignment(r.Context(), assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidAssignmentID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrAssignmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Assignment{
		ID:         assignmentEntity.ID,
		RiderID:    assignmentEntity.RiderID,
		OrderIDs:   assignmentEntity.OrderIDs,
		Status:     assignmentEntity.Status.String(),
		AssignedAt: assignmentEntity.AssignedAt,
		Deadline:   assignmentEntity.Deadline,
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
