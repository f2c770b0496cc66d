package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
	bookingRepo "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/infra/storage/booking"
	slotRepo "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/infra/storage/slot"
)

// UseCase use case редактирования существующего бронирования
//
// Редактирование может само нарушить уникальность квартиры на дату,
// поэтому проверка выполняется заново - так же, как при допуске нового
// бронирования, но с исключением самого редактируемого бронирования.
// Вместимость не перепроверяется: слот бронирования неизменяем.
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет редактирование бронирования
// Обновляются только имя, квартира и телефон; слот и created_at не меняются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, flat=%s", req.BookingID, req.Flat)

	// 1. Валидация и нормализация входных данных
	cand, err := normalizeAndValidate(req)
	if err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var slot *domain.Slot

	// 2. Проверка уникальности и обновление в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем текущее бронирование
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrStorageUnavailable, err)
		}

		// 2.2. Получаем слот бронирования (нужна его дата)
		s, err := uc.slotRepo.GetByID(txCtx, current.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				// Слот не удаляется в нормальной работе; осиротевшее
				// бронирование означает рассинхронизацию данных
				uc.logger.Error("UpdateBooking: slot id=%d missing for booking id=%d",
					current.SlotID, current.ID)
				return fmt.Errorf("%w: booking references missing slot", ErrStorageUnavailable)
			}
			uc.logger.Error("UpdateBooking: failed to get slot id=%d: %v", current.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrStorageUnavailable, err)
		}
		slot = s

		// 2.3. Проверяем уникальность квартиры на дату слота
		// Квартира "000" (Mandal Aarti) освобождена от этого правила
		if cand.flat != domain.MandalFlat {
			// Блокируем слоты даты, чтобы исключить гонку с конкурентным допуском
			if _, err := uc.slotRepo.ListByDate(txCtx, s.Date); err != nil {
				uc.logger.Error("UpdateBooking: failed to lock slots for date=%s: %v",
					s.Date.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to lock slots: %v", ErrStorageUnavailable, err)
			}

			siblings, err := uc.bookingRepo.ListByDate(txCtx, s.Date)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to get bookings for date=%s: %v",
					s.Date.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrStorageUnavailable, err)
			}

			for _, b := range siblings {
				// Само редактируемое бронирование из сравнения исключается:
				// сохранение без смены квартиры - не конфликт
				if b.ID == current.ID {
					continue
				}
				if b.Flat == cand.flat {
					uc.logger.Warn("UpdateBooking: flat=%s already booked for date=%s (booking id=%d)",
						cand.flat, s.Date.Format(domain.DateFormat), b.ID)
					return fmt.Errorf("%w: flat %s is already booked for %s",
						ErrFlatAlreadyBooked, cand.flat, s.Date.Format(domain.DateFormat))
				}
			}
		}

		// 2.4. Обновляем изменяемые поля
		current.Name = cand.name
		current.Flat = cand.flat
		current.Phone = cand.phone

		if err := uc.bookingRepo.Update(txCtx, current); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d disappeared during update", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrStorageUnavailable, err)
		}

		result = current
		return nil
	})

	if err != nil {
		if !uc.isDecision(err) {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d (flat=%s)", result.ID, result.Flat)

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

// isDecision сообщает, является ли ошибка окончательным решением
// Решения не имеет смысла повторять без новых данных; все прочее - сбои хранилища
func (uc *UseCase) isDecision(err error) bool {
	return errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrFlatAlreadyBooked) ||
		errors.Is(err, ErrStorageUnavailable)
}
