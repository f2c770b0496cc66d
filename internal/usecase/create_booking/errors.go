package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotFull возвращается, когда все места в слоте заняты
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrFlatAlreadyBooked возвращается, когда квартира уже имеет бронирование
	// на любой слот этой даты (кроме сентинельной квартиры "000")
	ErrFlatAlreadyBooked = errors.New("create_booking: flat is already booked for this date")

	// ErrStorageUnavailable возвращается при сбое хранилища
	// Операцию безопасно повторить целиком с теми же входными данными
	ErrStorageUnavailable = errors.New("create_booking: storage unavailable")
)
