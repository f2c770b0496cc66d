package slots_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
	slotRepoPkg "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/infra/storage/slot"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/slots"
)

type fakeSlotRepo struct {
	slots   []*domain.Slot
	listErr error
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	for _, s := range r.slots {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, slotRepoPkg.ErrSlotNotFound
}

func (r *fakeSlotRepo) List(_ context.Context) ([]*domain.Slot, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.slots, nil
}

type fakeBookingRepo struct {
	items []*domain.BookingWithSlot
}

func (r *fakeBookingRepo) ListBySlotID(_ context.Context, slotID int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, item := range r.items {
		if item.Booking.SlotID == slotID {
			b := item.Booking
			out = append(out, &b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListWithSlots(_ context.Context) ([]*domain.BookingWithSlot, error) {
	return r.items, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)

func testSlot(id int64, timeOfDay domain.TimeOfDay) *domain.Slot {
	return &domain.Slot{ID: id, Date: testDate, TimeOfDay: timeOfDay, Capacity: 2}
}

func testItem(bookingID, slotID int64, flat string) *domain.BookingWithSlot {
	return &domain.BookingWithSlot{
		Booking: domain.Booking{ID: bookingID, SlotID: slotID, Name: "Asha", Flat: flat, Phone: "9876543210"},
		Slot:    *testSlot(slotID, domain.FirstAarti),
	}
}

func TestList(t *testing.T) {
	t.Run("groups bookings by slot and keeps empty slots", func(t *testing.T) {
		slotRepo := &fakeSlotRepo{slots: []*domain.Slot{
			testSlot(1, domain.FirstAarti),
			testSlot(2, domain.SecondAarti),
		}}
		bookingRepo := &fakeBookingRepo{items: []*domain.BookingWithSlot{
			testItem(7, 1, "101"),
			testItem(8, 1, "202"),
		}}
		svc := slots.NewService(slotRepo, bookingRepo, nopLogger{})

		resp, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, resp.Total)

		first := resp.Slots[0]
		assert.Equal(t, int64(1), first.ID)
		assert.Len(t, first.Bookings, 2)
		assert.True(t, first.IsFull)
		assert.Equal(t, 0, first.SpotsLeft)

		second := resp.Slots[1]
		assert.Equal(t, int64(2), second.ID)
		assert.Empty(t, second.Bookings)
		assert.False(t, second.IsFull)
		assert.Equal(t, 2, second.SpotsLeft)
	})

	t.Run("storage failure", func(t *testing.T) {
		slotRepo := &fakeSlotRepo{listErr: errors.New("connection refused")}
		svc := slots.NewService(slotRepo, &fakeBookingRepo{}, nopLogger{})

		_, err := svc.List(context.Background())
		assert.ErrorIs(t, err, slots.ErrStorageUnavailable)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("slot with bookings", func(t *testing.T) {
		slotRepo := &fakeSlotRepo{slots: []*domain.Slot{testSlot(1, domain.FirstAarti)}}
		bookingRepo := &fakeBookingRepo{items: []*domain.BookingWithSlot{testItem(7, 1, "101")}}
		svc := slots.NewService(slotRepo, bookingRepo, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "2025-09-22", resp.Date)
		assert.Equal(t, string(domain.FirstAarti), resp.TimeOfDay)
		assert.Len(t, resp.Bookings, 1)
		assert.Equal(t, 1, resp.SpotsLeft)
	})

	t.Run("not found", func(t *testing.T) {
		svc := slots.NewService(&fakeSlotRepo{}, &fakeBookingRepo{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, slots.ErrSlotNotFound)
	})
}
