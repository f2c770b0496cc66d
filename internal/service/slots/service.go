package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
	slotRepo "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/infra/storage/slot"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/slots/models"
)

// Service сервис каталога слотов аарти
// Каталог read-only: слоты создаются один раз сидером и дальше не меняются
type Service struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога слотов
func NewService(slotRepo SlotRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List получает все слоты с их бронированиями в порядке расписания
// (дата по возрастанию, затем порядок аарти внутри дня)
func (s *Service) List(ctx context.Context) (*models.SlotListResponse, error) {
	s.logger.Info("List: fetching slot catalog")

	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to fetch slots: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStorageUnavailable, err)
	}

	bookings, err := s.bookingRepo.ListWithSlots(ctx)
	if err != nil {
		s.logger.Error("List: failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStorageUnavailable, err)
	}

	// Группируем бронирования по слотам; слоты без бронирований остаются пустыми
	bySlot := make(map[int64][]*domain.Booking, len(slots))
	for _, item := range bookings {
		b := item.Booking
		bySlot[b.SlotID] = append(bySlot[b.SlotID], &b)
	}

	items := make([]*domain.SlotWithBookings, 0, len(slots))
	for _, sl := range slots {
		items = append(items, &domain.SlotWithBookings{
			Slot:     *sl,
			Bookings: bySlot[sl.ID],
		})
	}

	s.logger.Info("List: successfully fetched %d slots", len(items))
	return models.FromDomainSlotList(items), nil
}

// GetByID получает один слот с его бронированиями
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotResponse, error) {
	s.logger.Info("GetByID: fetching slot id=%d", id)

	sl, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStorageUnavailable, err)
	}

	bookings, err := s.bookingRepo.ListBySlotID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch bookings for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStorageUnavailable, err)
	}

	resp := models.FromDomainSlotWithBookings(&domain.SlotWithBookings{
		Slot:     *sl,
		Bookings: bookings,
	})

	s.logger.Info("GetByID: successfully fetched slot id=%d (%d bookings)", id, len(bookings))
	return &resp, nil
}
