package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/internal/infra/events"
	availabilityRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/booking"
)

type mockBookingRepository struct {
	createFunc                    func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	getActiveByAvailabilityIDFunc func(ctx context.Context, availabilityID int64) (*domain.Booking, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	created := *booking
	created.ID = 100
	return &created, nil
}

func (m *mockBookingRepository) GetActiveByAvailabilityID(ctx context.Context, availabilityID int64) (*domain.Booking, error) {
	if m.getActiveByAvailabilityIDFunc != nil {
		return m.getActiveByAvailabilityIDFunc(ctx, availabilityID)
	}
	return nil, bookingRepo.ErrBookingNotFound
}

type mockAvailabilityRepository struct {
	getByIDFunc   func(ctx context.Context, id int64) (*domain.Availability, error)
	setActiveFunc func(ctx context.Context, id int64, active bool) error
}

func (m *mockAvailabilityRepository) GetByID(ctx context.Context, id int64) (*domain.Availability, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, availabilityRepo.ErrAvailabilityNotFound
}

func (m *mockAvailabilityRepository) SetActive(ctx context.Context, id int64, active bool) error {
	if m.setActiveFunc != nil {
		return m.setActiveFunc(ctx, id, active)
	}
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockPublisher struct {
	published []events.BookingEvent
	err       error
}

func (m *mockPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, event)
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func activeSlot() *domain.Availability {
	return &domain.Availability{
		ID:      5,
		CourtID: 1,
		StartAt: testNow.Add(2 * time.Hour),
		EndAt:   testNow.Add(3 * time.Hour),
		Period:  domain.PeriodMorning,
		Active:  true,
	}
}

func newTestUseCase(bookings *mockBookingRepository, avail *mockAvailabilityRepository, publisher *mockPublisher) *UseCase {
	uc := NewUseCase(bookings, avail, &mockTxManager{}, publisher, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	var consumedID int64
	var consumedActive = true

	avail := &mockAvailabilityRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Availability, error) {
			return activeSlot(), nil
		},
		setActiveFunc: func(ctx context.Context, id int64, active bool) error {
			consumedID = id
			consumedActive = active
			return nil
		},
	}
	publisher := &mockPublisher{}

	uc := newTestUseCase(&mockBookingRepository{}, avail, publisher)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, CourtID: 1, AvailabilityID: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(5), resp.AvailabilityID)

	// Слот занят
	assert.Equal(t, int64(5), consumedID)
	assert.False(t, consumedActive)

	// Событие о создании опубликовано
	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TypeBookingCreated, publisher.published[0].Type)
	assert.Equal(t, int64(100), publisher.published[0].BookingID)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepository{}, &mockAvailabilityRepository{}, &mockPublisher{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, CourtID: 1, AvailabilityID: 99})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotBelongsToAnotherCourt(t *testing.T) {
	avail := &mockAvailabilityRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Availability, error) {
			return activeSlot(), nil
		},
	}

	uc := newTestUseCase(&mockBookingRepository{}, avail, &mockPublisher{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, CourtID: 2, AvailabilityID: 5})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_InactiveSlot(t *testing.T) {
	avail := &mockAvailabilityRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Availability, error) {
			slot := activeSlot()
			slot.Active = false
			return slot, nil
		},
	}

	uc := newTestUseCase(&mockBookingRepository{}, avail, &mockPublisher{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, CourtID: 1, AvailabilityID: 5})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_SlotInPast(t *testing.T) {
	avail := &mockAvailabilityRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Availability, error) {
			slot := activeSlot()
			slot.StartAt = testNow.Add(-time.Minute)
			return slot, nil
		},
	}

	uc := newTestUseCase(&mockBookingRepository{}, avail, &mockPublisher{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, CourtID: 1, AvailabilityID: 5})
	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestExecute_ActiveBookingExists(t *testing.T) {
	avail := &mockAvailabilityRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Availability, error) {
			return activeSlot(), nil
		},
	}
	bookings := &mockBookingRepository{
		getActiveByAvailabilityIDFunc: func(ctx context.Context, availabilityID int64) (*domain.Booking, error) {
			return &domain.Booking{ID: 50, Status: domain.StatusConfirmed}, nil
		},
	}

	uc := newTestUseCase(bookings, avail, &mockPublisher{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, CourtID: 1, AvailabilityID: 5})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_UniqueViolationOnInsert(t *testing.T) {
	// Конкурент успел вставить бронирование между проверкой и insert -
	// репозиторий транслирует unique violation в ErrSlotAlreadyBooked
	avail := &mockAvailabilityRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Availability, error) {
			return activeSlot(), nil
		},
	}
	bookings := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			return nil, bookingRepo.ErrSlotAlreadyBooked
		},
	}

	uc := newTestUseCase(bookings, avail, &mockPublisher{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, CourtID: 1, AvailabilityID: 5})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_PublishFailureDoesNotFailBooking(t *testing.T) {
	avail := &mockAvailabilityRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Availability, error) {
			return activeSlot(), nil
		},
	}
	publisher := &mockPublisher{err: errors.New("broker unavailable")}

	uc := newTestUseCase(&mockBookingRepository{}, avail, publisher)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, CourtID: 1, AvailabilityID: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepository{}, &mockAvailabilityRepository{}, &mockPublisher{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero user", req: &Request{CourtID: 1, AvailabilityID: 5}},
		{name: "zero court", req: &Request{UserID: 7, AvailabilityID: 5}},
		{name: "negative availability", req: &Request{UserID: 7, CourtID: 1, AvailabilityID: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
