package driver_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gasline/internal/dto"
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
	driverID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || driverID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	d, err := h.service.GetDriver(r.Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get driver")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromDriver(d))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
