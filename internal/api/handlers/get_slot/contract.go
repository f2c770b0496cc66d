package get_slot

import (
	"context"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/slots/models"
)

type SlotService interface {
	GetByID(ctx context.Context, id int64) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
