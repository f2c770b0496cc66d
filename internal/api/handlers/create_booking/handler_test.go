package create_booking_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers"
	handler "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers/create_booking"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
	createBooking "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/usecase/create_booking"
)

type stubUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
}

func newRouter(uc *stubUseCase) *mux.Router {
	h := handler.NewHandler(uc, nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/slots/{slotId}/bookings", h.Handle).Methods(http.MethodPost)
	return router
}

func doRequest(t *testing.T, router *mux.Router, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:        7,
		SlotID:    1,
		Date:      testDate(),
		TimeOfDay: domain.FirstAarti,
		Name:      "Asha",
		Flat:      "101",
		Phone:     "9876543210",
	}}
	router := newRouter(uc)

	rec := doRequest(t, router, "/api/v1/slots/1/bookings", map[string]string{
		"name": "Asha", "flat": "101", "phone": "9876543210",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.SlotID)

	var resp handler.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2025-09-22", resp.Date)
	assert.Equal(t, string(domain.FirstAarti), resp.TimeOfDay)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"slot not found", createBooking.ErrSlotNotFound, http.StatusNotFound},
		{"slot full", createBooking.ErrSlotFull, http.StatusConflict},
		{"flat already booked", createBooking.ErrFlatAlreadyBooked, http.StatusConflict},
		{"storage unavailable", createBooking.ErrStorageUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&stubUseCase{err: tt.err})

			rec := doRequest(t, router, "/api/v1/slots/1/bookings", map[string]string{
				"name": "Asha", "flat": "101", "phone": "9876543210",
			})

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandle_BadSlotID(t *testing.T) {
	uc := &stubUseCase{}
	router := newRouter(uc)

	rec := doRequest(t, router, "/api/v1/slots/abc/bookings", map[string]string{
		"name": "Asha", "flat": "101", "phone": "9876543210",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_BadBody(t *testing.T) {
	uc := &stubUseCase{}
	h := handler.NewHandler(uc, nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/slots/{slotId}/bookings", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/1/bookings",
		bytes.NewReader([]byte(`{"name": "Asha", "unknown": true}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
