package create_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers"
	createBooking "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/usecase/create_booking"
)

const (
	msgInvalidSlotID      = "invalid slot id"
	msgInvalidRequestBody = "invalid request body"
	msgSlotNotFound       = "slot not found"
	msgSlotFull           = "slot is full"
	msgFlatAlreadyBooked  = "this flat is already booked for this date, use 000 for Mandal Aarti"
	msgStorageUnavailable = "service temporarily unavailable, please try again"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotIDStr := vars["slotId"]

	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/bookings - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(slotID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/bookings - Invalid input: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/bookings - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /slots/{id}/bookings - Slot full: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createBooking.ErrFlatAlreadyBooked):
			h.logger.Warn("POST /slots/{id}/bookings - Flat already booked: slot_id=%d, flat=%s", slotID, req.Flat)
			handlers.RespondConflict(w, msgFlatAlreadyBooked)

		case errors.Is(err, createBooking.ErrStorageUnavailable):
			h.logger.Error("POST /slots/{id}/bookings - Storage unavailable: slot_id=%d, error=%v", slotID, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("POST /slots/{id}/bookings - Failed to create booking: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/bookings - Booking created successfully: booking_id=%d, slot_id=%d",
		result.ID, slotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
