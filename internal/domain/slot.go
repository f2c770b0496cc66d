package domain

import "time"

// TimeOfDay represents the aarti performed in a slot
type TimeOfDay string

const (
	FirstAarti  TimeOfDay = "First Aarti"
	SecondAarti TimeOfDay = "Second Aarti"
)

// timeOfDaySeq определяет хронологический порядок аарти в течение дня
// Сортировка по текстовой метке здесь не подходит, порядок задается явно
var timeOfDaySeq = map[TimeOfDay]int{
	FirstAarti:  1,
	SecondAarti: 2,
}

// Seq returns the chronological rank of the aarti within a day
func (t TimeOfDay) Seq() int {
	if seq, ok := timeOfDaySeq[t]; ok {
		return seq
	}
	return 0
}

// IsValid returns true if the label is one of the known aartis
func (t TimeOfDay) IsValid() bool {
	_, ok := timeOfDaySeq[t]
	return ok
}

// Slot represents a bookable aarti slot on a fixed date
// Slots are seeded once before the festival and never mutated afterwards
type Slot struct {
	ID        int64
	Date      time.Time // calendar date, no time component
	TimeOfDay TimeOfDay
	Capacity  int
	CreatedAt time.Time
}

// SlotWithBookings слот вместе с его бронированиями (для витрины и админки)
type SlotWithBookings struct {
	Slot     Slot
	Bookings []*Booking
}

// IsFull returns true if the slot has no free spots left
func (s *SlotWithBookings) IsFull() bool {
	return len(s.Bookings) >= s.Slot.Capacity
}

// SpotsLeft returns the number of free spots in the slot
func (s *SlotWithBookings) SpotsLeft() int {
	left := s.Slot.Capacity - len(s.Bookings)
	if left < 0 {
		return 0
	}
	return left
}
