package bookings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
	bookingRepoPkg "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/infra/storage/booking"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/bookings"
)

type fakeBookingRepo struct {
	items     map[int64]*domain.BookingWithSlot
	listErr   error
	deleteErr error
}

func (r *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.items[id]; !ok {
		return bookingRepoPkg.ErrBookingNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeBookingRepo) ListWithSlots(_ context.Context) ([]*domain.BookingWithSlot, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.BookingWithSlot, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)

func testItem(bookingID int64) *domain.BookingWithSlot {
	return &domain.BookingWithSlot{
		Booking: domain.Booking{
			ID:     bookingID,
			SlotID: 1,
			Name:   "Asha",
			Flat:   "101",
			Phone:  "9876543210",
		},
		Slot: domain.Slot{
			ID:        1,
			Date:      testDate,
			TimeOfDay: domain.FirstAarti,
			Capacity:  2,
		},
	}
}

func TestDelete(t *testing.T) {
	t.Run("repeated delete of same id is rejected", func(t *testing.T) {
		repo := &fakeBookingRepo{items: map[int64]*domain.BookingWithSlot{7: testItem(7)}}
		svc := bookings.NewService(repo, nopLogger{})

		require.NoError(t, svc.Delete(context.Background(), 7))

		err := svc.Delete(context.Background(), 7)
		assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := &fakeBookingRepo{items: map[int64]*domain.BookingWithSlot{}}
		svc := bookings.NewService(repo, nopLogger{})

		err := svc.Delete(context.Background(), 42)
		assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := &fakeBookingRepo{deleteErr: errors.New("connection refused")}
		svc := bookings.NewService(repo, nopLogger{})

		err := svc.Delete(context.Background(), 7)
		assert.ErrorIs(t, err, bookings.ErrStorageUnavailable)
	})
}

func TestGetAll(t *testing.T) {
	t.Run("journal with slot details", func(t *testing.T) {
		repo := &fakeBookingRepo{items: map[int64]*domain.BookingWithSlot{7: testItem(7)}}
		svc := bookings.NewService(repo, nopLogger{})

		resp, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(7), resp.Bookings[0].ID)
		assert.Equal(t, "2025-09-22", resp.Bookings[0].Date)
		assert.Equal(t, string(domain.FirstAarti), resp.Bookings[0].TimeOfDay)
	})

	t.Run("empty journal", func(t *testing.T) {
		repo := &fakeBookingRepo{items: map[int64]*domain.BookingWithSlot{}}
		svc := bookings.NewService(repo, nopLogger{})

		resp, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.NotNil(t, resp.Bookings)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := &fakeBookingRepo{listErr: errors.New("connection refused")}
		svc := bookings.NewService(repo, nopLogger{})

		_, err := svc.GetAll(context.Background())
		assert.ErrorIs(t, err, bookings.ErrStorageUnavailable)
	})
}
