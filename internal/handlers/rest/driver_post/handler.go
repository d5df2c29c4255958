package driver_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"gasline/internal/dto"
	"gasline/internal/entities"
	"gasline/internal/service/driver"
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
	var driverCreateDTO dto.DriverCreate
	err := json.NewDecoder(r.Body).Decode(&driverCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateDriver(r.Context(), entities.DriverCreate{
		UserID:      driverCreateDTO.UserID,
		CurrentLat:  driverCreateDTO.CurrentLat,
		CurrentLong: driverCreateDTO.CurrentLong,
	})
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrNotDriverRole):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, driver.ErrDriverExists):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create driver")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.DriverCreateResponse{ID: id})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
