package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// Повторное удаление того же бронирования получает именно эту ошибку
	ErrBookingNotFound = errors.New("booking not found")

	// ErrStorageUnavailable возвращается при сбое хранилища
	ErrStorageUnavailable = errors.New("bookings service: storage unavailable")
)
