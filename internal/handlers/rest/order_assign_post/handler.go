package order_assign_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gasline/internal/dto"
	"gasline/internal/service/dispatch"
	"gasline/internal/service/order"
	"gasline/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || orderID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Body is optional: without driver_id the dispatcher picks the best one.
	var assignDTO dto.OrderAssign
	if err := json.NewDecoder(r.Body).Decode(&assignDTO); err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignDriver(r.Context(), orderID, assignDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, dispatch.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrOrderNotPending),
			errors.Is(err, dispatch.ErrNoDriverAvailable),
			errors.Is(err, dispatch.ErrDriverUnavailable),
			errors.Is(err, dispatch.ErrConcurrentModification):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("assign driver")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrderAssignment(assignment))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
