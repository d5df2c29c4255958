package order_confirm_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gasline/internal/dto"
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

	var confirmDTO dto.OrderConfirmDelivery
	if err := json.NewDecoder(r.Body).Decode(&confirmDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	confirmed, err := h.service.ConfirmDelivery(r.Context(), orderID, confirmDTO.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidTransition):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, order.ErrConcurrentModification):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("confirm delivery")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(confirmed))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
