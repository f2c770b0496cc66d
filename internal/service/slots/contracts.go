package slots

import (
	"context"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	List(ctx context.Context) ([]*domain.Slot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListBySlotID(ctx context.Context, slotID int64) ([]*domain.Booking, error)
	ListWithSlots(ctx context.Context) ([]*domain.BookingWithSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
