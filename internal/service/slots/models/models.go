package models

import (
	"time"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
)

// BookingResponse бронирование внутри ответа каталога слотов
type BookingResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Flat      string    `json:"flat"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// SlotResponse слот вместе со своими бронированиями
type SlotResponse struct {
	ID        int64             `json:"id"`
	Date      string            `json:"date"`
	TimeOfDay string            `json:"timeOfDay"`
	Capacity  int               `json:"capacity"`
	SpotsLeft int               `json:"spotsLeft"`
	IsFull    bool              `json:"isFull"`
	Bookings  []BookingResponse `json:"bookings"`
}

// SlotListResponse каталог слотов в порядке расписания
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// FromDomainSlotWithBookings конвертирует доменную модель в ответ сервиса
func FromDomainSlotWithBookings(item *domain.SlotWithBookings) SlotResponse {
	bookings := make([]BookingResponse, 0, len(item.Bookings))
	for _, b := range item.Bookings {
		bookings = append(bookings, BookingResponse{
			ID:        b.ID,
			Name:      b.Name,
			Flat:      b.Flat,
			Phone:     b.Phone,
			CreatedAt: b.CreatedAt,
		})
	}

	return SlotResponse{
		ID:        item.Slot.ID,
		Date:      item.Slot.Date.Format(domain.DateFormat),
		TimeOfDay: string(item.Slot.TimeOfDay),
		Capacity:  item.Slot.Capacity,
		SpotsLeft: item.SpotsLeft(),
		IsFull:    item.IsFull(),
		Bookings:  bookings,
	}
}

// FromDomainSlotList конвертирует список доменных моделей в ответ сервиса
func FromDomainSlotList(items []*domain.SlotWithBookings) *SlotListResponse {
	slots := make([]SlotResponse, 0, len(items))
	for _, item := range items {
		slots = append(slots, FromDomainSlotWithBookings(item))
	}
	return &SlotListResponse{
		Slots: slots,
		Total: len(slots),
	}
}
