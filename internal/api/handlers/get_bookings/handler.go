package get_bookings

import (
	"errors"
	"net/http"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/bookings"
)

const (
	msgStorageUnavailable = "service temporarily unavailable, please try again"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStorageUnavailable):
			h.logger.Error("GET /bookings - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("GET /bookings - Failed to fetch bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
