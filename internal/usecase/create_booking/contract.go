package create_booking

import (
	"context"
	"time"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// AdmissionMetrics интерфейс бизнес-метрик допуска бронирований
type AdmissionMetrics interface {
	BookingAdmitted(timeOfDay string)
	BookingRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopMetrics заглушка метрик, используется при отключенном сборе метрик
type NopMetrics struct{}

func (NopMetrics) BookingAdmitted(string) {}
func (NopMetrics) BookingRejected(string) {}
