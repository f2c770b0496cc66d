package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrFlatAlreadyBooked возвращается, когда новый номер квартиры
	// конфликтует с другим бронированием на ту же дату
	ErrFlatAlreadyBooked = errors.New("update_booking: flat is already booked for this date")

	// ErrStorageUnavailable возвращается при сбое хранилища
	// Операцию безопасно повторить целиком с теми же входными данными
	ErrStorageUnavailable = errors.New("update_booking: storage unavailable")
)
