package publish_availability

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
	publishAvailability "github.com/m04kA/CourtBookingService/internal/usecase/publish_availability"
)

type mockUseCase struct {
	executeFunc func(ctx context.Context, req *publishAvailability.Request) (*publishAvailability.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *publishAvailability.Request) (*publishAvailability.Response, error) {
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
	protected.HandleFunc("/courts/{courtId}/availability", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/courts/1/availability", bytes.NewReader(raw))
	req.Header.Set("X-User-ID", "10")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validBody() PublishAvailabilityRequest {
	return PublishAvailabilityRequest{
		Date: "2025-06-01",
		Slots: []SlotRequest{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "10:20", EndTime: "11:20"},
		},
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *publishAvailability.Request) (*publishAvailability.Response, error) {
			assert.Equal(t, int64(1), req.CourtID)
			assert.Equal(t, int64(10), req.CreatedBy)
			require.Len(t, req.Slots, 2)

			return &publishAvailability.Response{
				Created: []*domain.Availability{
					{
						ID:        1,
						CourtID:   1,
						Day:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
						StartAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
						EndAt:     time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
						Period:    domain.PeriodMorning,
						Active:    true,
						CreatedBy: 10,
					},
				},
			}, nil
		},
	}

	rec := doRequest(t, newRouter(uc), validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp PublishAvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Created, 1)
	assert.Equal(t, "2025-06-01", resp.Created[0].Date)
	assert.Equal(t, "morning", resp.Created[0].Period)
	assert.True(t, resp.Created[0].Active)
}

func TestHandle_BatchValidationErrors(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *publishAvailability.Request) (*publishAvailability.Response, error) {
			verrs := &publishAvailability.ValidationErrors{
				Errors: []publishAvailability.FieldError{
					{Field: "slots[1]", Message: "overlaps slots[0]"},
					{Field: "slots[2].startTime", Message: "invalid time, expected format HH:MM"},
				},
			}
			return nil, verrs
		},
	}

	rec := doRequest(t, newRouter(uc), validBody())

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Клиент получает полный список нарушений за один заход
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "slots[1]", resp.Fields[0].Field)
	assert.Equal(t, "slots[2].startTime", resp.Fields[1].Field)
}

func TestHandle_CourtNotFound(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *publishAvailability.Request) (*publishAvailability.Response, error) {
			return nil, publishAvailability.ErrCourtNotFound
		},
	}

	rec := doRequest(t, newRouter(uc), validBody())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_DayHasActiveBookings(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *publishAvailability.Request) (*publishAvailability.Response, error) {
			return nil, publishAvailability.ErrDayHasActiveBookings
		},
	}

	rec := doRequest(t, newRouter(uc), validBody())

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "активными бронированиями")
}

func TestHandle_EmptySlots(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *publishAvailability.Request) (*publishAvailability.Response, error) {
			t.Fatal("use case must not be called on structurally invalid body")
			return nil, nil
		},
	}

	body := PublishAvailabilityRequest{Date: "2025-06-01", Slots: []SlotRequest{}}
	rec := doRequest(t, newRouter(uc), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingUserIdentity(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *publishAvailability.Request) (*publishAvailability.Response, error) {
			t.Fatal("use case must not be called without user identity")
			return nil, nil
		},
	}

	router := newRouter(uc)

	raw, err := json.Marshal(validBody())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/courts/1/availability", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
