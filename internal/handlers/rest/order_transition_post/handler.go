package order_transition_post

import (
	"context"
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

type transitionFn func(ctx context.Context, orderID, driverID int64) (*entities.Order, error)

type Handler struct {
	log        handlerLogger
	name       string
	transition transitionFn
}

func NewAccept(log handlerLogger, service Service) *Handler {
	return newHandler(log, "accept order", service.AcceptOrder)
}

func NewPickUp(log handlerLogger, service Service) *Handler {
	return newHandler(log, "pick up order", service.PickUpOrder)
}

func NewTransit(log handlerLogger, service Service) *Handler {
	return newHandler(log, "mark order in transit", service.MarkInTransit)
}

func NewDeliver(log handlerLogger, service Service) *Handler {
	return newHandler(log, "deliver order", service.DeliverOrder)
}

func newHandler(log handlerLogger, name string, transition transitionFn) *Handler {
	return &Handler{
		log:        log,
		name:       name,
		transition: transition,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || orderID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var transitionDTO dto.OrderTransition
	if err := json.NewDecoder(r.Body).Decode(&transitionDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.transition(r.Context(), orderID, transitionDTO.DriverID)
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
			).Error(h.name)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
