package get_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/slots"
)

const (
	msgInvalidSlotID      = "invalid slot id"
	msgSlotNotFound       = "slot not found"
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

// Handle GET /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotIDStr := vars["slotId"]

	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.service.GetByID(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("GET /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrStorageUnavailable):
			h.logger.Error("GET /slots/{id} - Storage unavailable: slot_id=%d, error=%v", slotID, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("GET /slots/{id} - Failed to fetch slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/{id} - Fetched slot: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
