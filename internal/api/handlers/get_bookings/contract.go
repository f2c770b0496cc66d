package get_bookings

import (
	"context"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/bookings/models"
)

type BookingService interface {
	GetAll(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
