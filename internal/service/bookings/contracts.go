package bookings

import (
	"context"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Delete(ctx context.Context, id int64) error
	ListWithSlots(ctx context.Context) ([]*domain.BookingWithSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
