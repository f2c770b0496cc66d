package domain

import (
	"strings"
	"time"
)

// Booking represents a single reservation of a flat against an aarti slot
type Booking struct {
	ID     int64
	SlotID int64 // immutable after creation, bookings never move between slots
	Name   string
	Flat   string
	Phone  string

	CreatedAt time.Time
}

// IsMandal returns true for Mandal Aarti bookings (flat "000")
// Such bookings are exempt from the one-booking-per-flat-per-date rule
func (b *Booking) IsMandal() bool {
	return b.Flat == MandalFlat
}

// BookingWithSlot бронирование вместе со своим слотом (для админской выборки)
type BookingWithSlot struct {
	Booking Booking
	Slot    Slot
}

// NormalizePhone убирает из номера все символы, кроме цифр
// Валидность длины проверяется отдельно, см. PhoneDigits
func NormalizePhone(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
