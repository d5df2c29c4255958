package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderCreate := entities.OrderCreate{
		CustomerID:        orderCreateDTO.CustomerID,
		TankSize:          orderCreateDTO.TankSize,
		Quantity:          orderCreateDTO.Quantity,
		DeliveryAddress:   orderCreateDTO.DeliveryAddress,
		DeliveryLatitude:  orderCreateDTO.DeliveryLatitude,
		DeliveryLongitude: orderCreateDTO.DeliveryLongitude,
		PaymentMethod:     entities.PaymentMethodType(orderCreateDTO.PaymentMethod),
		Amount:            orderCreateDTO.Amount,
		TotalAmount:       orderCreateDTO.TotalAmount,
	}

	created, err := h.service.CreateOrder(r.Context(), orderCreate)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrInvalidCoordinates),
			errors.Is(err, order.ErrInvalidPaymentMethod),
			errors.Is(err, order.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrActiveOrderExists):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, order.ErrPOSNotEligible):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromOrder(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
