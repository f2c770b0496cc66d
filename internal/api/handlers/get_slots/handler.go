package get_slots

import (
	"errors"
	"net/http"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/slots"
)

const (
	msgStorageUnavailable = "service temporarily unavailable, please try again"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrStorageUnavailable):
			h.logger.Error("GET /slots - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("GET /slots - Failed to fetch slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Fetched %d slots", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
