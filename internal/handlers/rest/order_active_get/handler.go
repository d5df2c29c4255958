package order_active_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	customerID, err := strconv.ParseInt(r.URL.Query().Get("customer_id"), 10, 64)
	if err != nil || customerID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	check, err := h.service.CheckActiveOrder(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, order.ErrMissingRequiredFields) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.log.With(
			logger.NewField("error", err),
		).Error("check active order")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.ActiveOrderCheck{
		HasActiveOrder: check.HasActive,
		Order:          dto.FromOrder(check.Order),
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
