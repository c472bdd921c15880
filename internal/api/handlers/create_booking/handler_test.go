package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damn-devil/bath.book/internal/api/middleware"
	createBooking "github.com/damn-devil/bath.book/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func doRequest(t *testing.T, uc *fakeUseCase, userID string, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := middleware.Auth(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		Slot:           "14:30",
		AssignedCabins: []int{1},
		Bookings:       []createBooking.CreatedBooking{{ID: 7, CabinNumber: 1}},
	}}

	rec := doRequest(t, uc, "42", `{"slot":"14:30","cabins":1}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(42), uc.lastReq.UserID, "user id comes from the auth header")

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "14:30", resp.Slot)
	assert.Equal(t, []int{1}, resp.AssignedCabins)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(7), resp.Bookings[0].ID)
}

func TestHandle_MissingAuthHeader(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "", `{"slot":"14:30","cabins":1}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "42", `{"slot":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidSlotFormat(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "42", `{"slot":"25:99","cabins":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InsufficientCapacity(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.InsufficientCapacityError{Available: 1}}

	rec := doRequest(t, uc, "42", `{"slot":"14:30","cabins":2}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp insufficientCapacityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.AvailableCabins, "the actual remainder is reported to the caller")
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user not found", createBooking.ErrUserNotFound, http.StatusNotFound},
		{"gender not set", createBooking.ErrGenderNotSet, http.StatusBadRequest},
		{"slot in past", createBooking.ErrSlotInPast, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"storage unavailable", createBooking.ErrStorageUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, "42", `{"slot":"14:30","cabins":1}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
