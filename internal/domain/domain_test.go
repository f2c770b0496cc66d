package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain digits", "9876543210", "9876543210"},
		{"dashes and spaces", "98-765 43210", "9876543210"},
		{"country code kept as digits", "+919876543210", "919876543210"},
		{"letters stripped", "98abc76543210", "9876543210"},
		{"empty", "", ""},
		{"only separators", "- ()", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizePhone(tt.input))
		})
	}
}

func TestTimeOfDay(t *testing.T) {
	t.Run("chronological order is explicit, not lexical", func(t *testing.T) {
		assert.Less(t, domain.FirstAarti.Seq(), domain.SecondAarti.Seq())
	})

	t.Run("known labels are valid", func(t *testing.T) {
		assert.True(t, domain.FirstAarti.IsValid())
		assert.True(t, domain.SecondAarti.IsValid())
	})

	t.Run("unknown label", func(t *testing.T) {
		unknown := domain.TimeOfDay("Third Aarti")
		assert.False(t, unknown.IsValid())
		assert.Equal(t, 0, unknown.Seq())
	})
}

func TestBookingIsMandal(t *testing.T) {
	assert.True(t, (&domain.Booking{Flat: domain.MandalFlat}).IsMandal())
	assert.False(t, (&domain.Booking{Flat: "101"}).IsMandal())
}

func TestSlotWithBookings(t *testing.T) {
	slot := domain.Slot{
		ID:        1,
		Date:      time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC),
		TimeOfDay: domain.FirstAarti,
		Capacity:  2,
	}

	t.Run("empty slot", func(t *testing.T) {
		s := &domain.SlotWithBookings{Slot: slot}
		assert.False(t, s.IsFull())
		assert.Equal(t, 2, s.SpotsLeft())
	})

	t.Run("full slot", func(t *testing.T) {
		s := &domain.SlotWithBookings{
			Slot:     slot,
			Bookings: []*domain.Booking{{ID: 1}, {ID: 2}},
		}
		assert.True(t, s.IsFull())
		assert.Equal(t, 0, s.SpotsLeft())
	})

	t.Run("overfull slot never reports negative spots", func(t *testing.T) {
		s := &domain.SlotWithBookings{
			Slot:     slot,
			Bookings: []*domain.Booking{{ID: 1}, {ID: 2}, {ID: 3}},
		}
		assert.True(t, s.IsFull())
		assert.Equal(t, 0, s.SpotsLeft())
	})
}
