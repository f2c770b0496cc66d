package models

import (
	"time"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
)

// BookingResponse бронирование вместе с данными своего слота
type BookingResponse struct {
	ID        int64     `json:"id"`
	SlotID    int64     `json:"slotId"`
	Date      string    `json:"date"`
	TimeOfDay string    `json:"timeOfDay"`
	Name      string    `json:"name"`
	Flat      string    `json:"flat"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse журнал бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBookingWithSlot конвертирует доменную модель в ответ сервиса
func FromDomainBookingWithSlot(item *domain.BookingWithSlot) BookingResponse {
	return BookingResponse{
		ID:        item.Booking.ID,
		SlotID:    item.Booking.SlotID,
		Date:      item.Slot.Date.Format(domain.DateFormat),
		TimeOfDay: string(item.Slot.TimeOfDay),
		Name:      item.Booking.Name,
		Flat:      item.Booking.Flat,
		Phone:     item.Booking.Phone,
		CreatedAt: item.Booking.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей в ответ сервиса
func FromDomainBookingList(items []*domain.BookingWithSlot) *BookingListResponse {
	bookings := make([]BookingResponse, 0, len(items))
	for _, item := range items {
		bookings = append(bookings, FromDomainBookingWithSlot(item))
	}
	return &BookingListResponse{
		Bookings: bookings,
		Total:    len(bookings),
	}
}
