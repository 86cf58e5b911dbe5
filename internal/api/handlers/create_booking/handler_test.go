package create_booking

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

	"github.com/m04kA/CourtBookingService/internal/api/middleware"
	"github.com/m04kA/CourtBookingService/internal/domain"
	createBooking "github.com/m04kA/CourtBookingService/internal/usecase/create_booking"
)

type mockUseCase struct {
	executeFunc func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return m.executeFunc(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(uc *mockUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/courts/{courtId}/bookings", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/courts/1/bookings", bytes.NewReader(raw))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			assert.Equal(t, int64(7), req.UserID)
			assert.Equal(t, int64(1), req.CourtID)
			assert.Equal(t, int64(5), req.AvailabilityID)

			return &createBooking.Response{
				ID:             100,
				UserID:         req.UserID,
				CourtID:        req.CourtID,
				AvailabilityID: req.AvailabilityID,
				Status:         string(domain.StatusPending),
				StartAt:        now,
				EndAt:          now.Add(time.Hour),
				Period:         domain.PeriodMorning,
				CreatedAt:      now,
				UpdatedAt:      now,
			}, nil
		},
	}

	rec := doRequest(t, newRouter(uc), "7", CreateBookingRequest{AvailabilityID: 5})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-06-01T12:00:00Z", resp.StartTime)
}

func TestHandle_SlotAlreadyBooked(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			return nil, createBooking.ErrSlotAlreadyBooked
		},
	}

	rec := doRequest(t, newRouter(uc), "7", CreateBookingRequest{AvailabilityID: 5})

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "слот уже забронирован")
}

func TestHandle_SlotNotFound(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			return nil, createBooking.ErrSlotNotFound
		},
	}

	rec := doRequest(t, newRouter(uc), "7", CreateBookingRequest{AvailabilityID: 99})

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "слот не найден")
}

func TestHandle_SlotInPast(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			return nil, createBooking.ErrSlotInPast
		},
	}

	rec := doRequest(t, newRouter(uc), "7", CreateBookingRequest{AvailabilityID: 5})

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandle_MissingUserIdentity(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			t.Fatal("use case must not be called without user identity")
			return nil, nil
		},
	}

	rec := doRequest(t, newRouter(uc), "", CreateBookingRequest{AvailabilityID: 5})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			t.Fatal("use case must not be called on invalid body")
			return nil, nil
		},
	}

	router := newRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/courts/1/bookings", bytes.NewReader([]byte("not json")))
	req.Header.Set("X-User-ID", "7")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingAvailabilityID(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			t.Fatal("use case must not be called on invalid body")
			return nil, nil
		},
	}

	rec := doRequest(t, newRouter(uc), "7", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
