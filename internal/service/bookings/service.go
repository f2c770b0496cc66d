package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/infra/storage/booking"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/bookings/models"
)

// Service сервис административных операций над журналом бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Delete удаляет бронирование
// Удаление только ослабляет инварианты вместимости и уникальности,
// поэтому кроме существования бронирования ничего перепроверять не нужно.
// Повторное удаление того же ID возвращает ErrBookingNotFound
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// GetAll получает весь журнал бронирований со слотами, сначала новые
// Используется админ-панелью
func (s *Service) GetAll(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("GetAll: fetching all bookings")

	items, err := s.bookingRepo.ListWithSlots(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("GetAll: successfully fetched %d bookings", len(items))
	return models.FromDomainBookingList(items), nil
}
