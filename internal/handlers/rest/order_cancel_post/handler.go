package order_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gasline/internal/dto"
	"gasline/internal/entities"
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

	var cancelDTO dto.OrderCancel
	if err := json.NewDecoder(r.Body).Decode(&cancelDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor := entities.CancelActor{
		Role: entities.ActorRoleType(cancelDTO.ActorRole),
		ID:   cancelDTO.ActorID,
	}

	cancelled, err := h.service.CancelOrder(r.Context(), orderID, actor, cancelDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrDriverMismatch):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrInvalidTransition):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, order.ErrConcurrentModification):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("cancel order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(cancelled))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
