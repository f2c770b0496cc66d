package create_booking

import (
	"time"

	createBooking "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name  string `json:"name"`
	Flat  string `json:"flat"`
	Phone string `json:"phone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	SlotID    int64  `json:"slotId"`
	Date      string `json:"date"`
	TimeOfDay string `json:"timeOfDay"`
	Name      string `json:"name"`
	Flat      string `json:"flat"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(slotID int64) *createBooking.Request {
	return &createBooking.Request{
		SlotID: slotID,
		Name:   r.Name,
		Flat:   r.Flat,
		Phone:  r.Phone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		SlotID:    resp.SlotID,
		Date:      resp.Date.Format("2006-01-02"),
		TimeOfDay: string(resp.TimeOfDay),
		Name:      resp.Name,
		Flat:      resp.Flat,
		Phone:     resp.Phone,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
