package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrStorageUnavailable возвращается при сбое хранилища
	ErrStorageUnavailable = errors.New("slots service: storage unavailable")
)
