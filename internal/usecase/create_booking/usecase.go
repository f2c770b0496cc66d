package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
	slotRepo "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/infra/storage/slot"
)

// Причины отказа для бизнес-метрик
const (
	rejectReasonInvalidInput = "invalid_input"
	rejectReasonNotFound     = "slot_not_found"
	rejectReasonSlotFull     = "slot_full"
	rejectReasonDuplicate    = "flat_already_booked"
	rejectReasonStorage      = "storage_unavailable"
)

// UseCase use case допуска нового бронирования в слот
//
// Проверка вместимости слота, проверка уникальности квартиры на дату и
// вставка бронирования выполняются как единое целое: под сериализуемой
// транзакцией и блокировкой всех слотов целевой даты. Два конкурента,
// претендующие на последнее место, не могут оба увидеть свободное место
// и оба закоммититься - проигравший получает ErrSlotFull.
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     AdmissionMetrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics AdmissionMetrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет попытку бронирования слота
// При отказе состояние хранилища не меняется (транзакция откатывается)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%d, flat=%s", req.SlotID, req.Flat)

	// 1. Валидация и нормализация входных данных
	cand, err := normalizeAndValidate(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.BookingRejected(rejectReasonInvalidInput)
		return nil, err
	}

	var result *domain.Booking
	var slot *domain.Slot

	// 2. Проверки и вставка выполняются в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем слот
		s, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrStorageUnavailable, err)
		}
		slot = s

		// 2.2. Блокируем все слоты этой даты (FOR UPDATE, в порядке id)
		// Конкурирующие попытки на ту же дату дальше этой точки идут по очереди
		if _, err := uc.slotRepo.ListByDate(txCtx, s.Date); err != nil {
			uc.logger.Error("CreateBooking: failed to lock slots for date=%s: %v",
				s.Date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to lock slots: %v", ErrStorageUnavailable, err)
		}

		// 2.3. Читаем все бронирования на эту дату
		bookings, err := uc.bookingRepo.ListByDate(txCtx, s.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for date=%s: %v",
				s.Date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrStorageUnavailable, err)
		}

		// 2.4. Проверяем вместимость слота
		slotCount := 0
		for _, b := range bookings {
			if b.SlotID == s.ID {
				slotCount++
			}
		}
		if slotCount >= s.Capacity {
			uc.logger.Warn("CreateBooking: slot id=%d is full, %d/%d spots taken",
				s.ID, slotCount, s.Capacity)
			return ErrSlotFull
		}

		// 2.5. Проверяем уникальность квартиры на дату
		// Квартира "000" (Mandal Aarti) освобождена от этого правила
		if cand.flat != domain.MandalFlat {
			for _, b := range bookings {
				if b.Flat == cand.flat {
					uc.logger.Warn("CreateBooking: flat=%s already booked for date=%s (booking id=%d)",
						cand.flat, s.Date.Format(domain.DateFormat), b.ID)
					return fmt.Errorf("%w: flat %s is already booked for %s",
						ErrFlatAlreadyBooked, cand.flat, s.Date.Format(domain.DateFormat))
				}
			}
		}

		// 2.6. Создаем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			SlotID: s.ID,
			Name:   cand.name,
			Flat:   cand.flat,
			Phone:  cand.phone,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrStorageUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.metrics.BookingRejected(rejectReason(err))
		// Исчерпанные повторы сериализации тоже отдаем как сбой хранилища
		if !uc.isDecision(err) {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (slot=%d, flat=%s)",
		result.ID, slot.ID, result.Flat)
	uc.metrics.BookingAdmitted(string(slot.TimeOfDay))

	return &Response{
		ID:        result.ID,
		SlotID:    result.SlotID,
		Date:      slot.Date,
		TimeOfDay: slot.TimeOfDay,
		Name:      result.Name,
		Flat:      result.Flat,
		Phone:     result.Phone,
		CreatedAt: result.CreatedAt,
	}, nil
}

// isDecision сообщает, является ли ошибка окончательным решением движка допуска
// Решения не имеет смысла повторять без новых данных; все прочее - сбои хранилища
func (uc *UseCase) isDecision(err error) bool {
	return errors.Is(err, ErrSlotNotFound) ||
		errors.Is(err, ErrSlotFull) ||
		errors.Is(err, ErrFlatAlreadyBooked) ||
		errors.Is(err, ErrStorageUnavailable)
}

// rejectReason маппит ошибку допуска в причину для метрик
func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrSlotNotFound):
		return rejectReasonNotFound
	case errors.Is(err, ErrSlotFull):
		return rejectReasonSlotFull
	case errors.Is(err, ErrFlatAlreadyBooked):
		return rejectReasonDuplicate
	default:
		return rejectReasonStorage
	}
}
