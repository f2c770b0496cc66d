package get_slots

import (
	"context"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/slots/models"
)

type SlotService interface {
	List(ctx context.Context) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
