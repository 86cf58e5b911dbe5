package publish_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/court"
)

type mockCourtRepository struct {
	getByIDFunc func(ctx context.Context, id int64) (*domain.Court, error)
}

func (m *mockCourtRepository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Court{ID: id}, nil
}

type mockAvailabilityRepository struct {
	replaceForDayFunc func(ctx context.Context, courtID int64, day time.Time, slots []*domain.Availability) ([]*domain.Availability, error)
}

func (m *mockAvailabilityRepository) ReplaceForDay(ctx context.Context, courtID int64, day time.Time, slots []*domain.Availability) ([]*domain.Availability, error) {
	if m.replaceForDayFunc != nil {
		return m.replaceForDayFunc(ctx, courtID, day, slots)
	}
	return slots, nil
}

type mockBookingRepository struct {
	countActiveForCourtDayFunc    func(ctx context.Context, courtID int64, day time.Time) (int, error)
	deleteTerminalForCourtDayFunc func(ctx context.Context, courtID int64, day time.Time) error
}

func (m *mockBookingRepository) CountActiveForCourtDay(ctx context.Context, courtID int64, day time.Time) (int, error) {
	if m.countActiveForCourtDayFunc != nil {
		return m.countActiveForCourtDayFunc(ctx, courtID, day)
	}
	return 0, nil
}

func (m *mockBookingRepository) DeleteTerminalForCourtDay(ctx context.Context, courtID int64, day time.Time) error {
	if m.deleteTerminalForCourtDayFunc != nil {
		return m.deleteTerminalForCourtDayFunc(ctx, courtID, day)
	}
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestUseCase(t *testing.T, courts *mockCourtRepository, avail *mockAvailabilityRepository, bookings *mockBookingRepository) *UseCase {
	t.Helper()

	policy := testPolicy(t)
	uc := NewUseCase(courts, avail, bookings, &mockTxManager{}, policy, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow(policy)}
	return uc
}

func validRequest() *Request {
	return &Request{
		CourtID:   1,
		CreatedBy: 10,
		Date:      "2025-06-01",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "10:20", EndTime: "11:20"},
		},
	}
}

func TestExecute_Success(t *testing.T) {
	var replacedDay time.Time
	avail := &mockAvailabilityRepository{
		replaceForDayFunc: func(ctx context.Context, courtID int64, day time.Time, slots []*domain.Availability) ([]*domain.Availability, error) {
			replacedDay = day
			for i, s := range slots {
				s.ID = int64(i + 1)
			}
			return slots, nil
		},
	}

	uc := newTestUseCase(t, &mockCourtRepository{}, avail, &mockBookingRepository{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Created, 2)
	assert.Equal(t, int64(1), resp.Created[0].ID)
	assert.Equal(t, 2025, replacedDay.Year())
}

func TestExecute_ValidationFailure(t *testing.T) {
	replaceCalled := false
	avail := &mockAvailabilityRepository{
		replaceForDayFunc: func(ctx context.Context, courtID int64, day time.Time, slots []*domain.Availability) ([]*domain.Availability, error) {
			replaceCalled = true
			return slots, nil
		},
	}

	uc := newTestUseCase(t, &mockCourtRepository{}, avail, &mockBookingRepository{})

	req := validRequest()
	req.Slots = []SlotInput{{StartTime: "09:00", EndTime: "08:00"}}

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.False(t, replaceCalled, "invalid batch must not touch storage")
}

func TestExecute_CourtNotFound(t *testing.T) {
	courts := &mockCourtRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Court, error) {
			return nil, courtRepo.ErrCourtNotFound
		},
	}

	uc := newTestUseCase(t, courts, &mockAvailabilityRepository{}, &mockBookingRepository{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_DayHasActiveBookings(t *testing.T) {
	replaceCalled := false
	avail := &mockAvailabilityRepository{
		replaceForDayFunc: func(ctx context.Context, courtID int64, day time.Time, slots []*domain.Availability) ([]*domain.Availability, error) {
			replaceCalled = true
			return slots, nil
		},
	}
	deleteTerminalCalled := false
	bookings := &mockBookingRepository{
		countActiveForCourtDayFunc: func(ctx context.Context, courtID int64, day time.Time) (int, error) {
			return 2, nil
		},
		deleteTerminalForCourtDayFunc: func(ctx context.Context, courtID int64, day time.Time) error {
			deleteTerminalCalled = true
			return nil
		},
	}

	uc := newTestUseCase(t, &mockCourtRepository{}, avail, bookings)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayHasActiveBookings)
	assert.False(t, replaceCalled, "day with active bookings must not be replaced")
	assert.False(t, deleteTerminalCalled, "refused replace must not touch bookings")
}

func TestExecute_ReplaceAfterCancelledBooking(t *testing.T) {
	// День с отменённым бронированием: активных нет, но строка бронирования
	// держит FK на слот. Перед заменой она должна быть удалена
	var order []string
	avail := &mockAvailabilityRepository{
		replaceForDayFunc: func(ctx context.Context, courtID int64, day time.Time, slots []*domain.Availability) ([]*domain.Availability, error) {
			order = append(order, "replace")
			return slots, nil
		},
	}
	var deletedCourtID int64
	var deletedDay time.Time
	bookings := &mockBookingRepository{
		countActiveForCourtDayFunc: func(ctx context.Context, courtID int64, day time.Time) (int, error) {
			return 0, nil
		},
		deleteTerminalForCourtDayFunc: func(ctx context.Context, courtID int64, day time.Time) error {
			order = append(order, "deleteTerminal")
			deletedCourtID = courtID
			deletedDay = day
			return nil
		},
	}

	uc := newTestUseCase(t, &mockCourtRepository{}, avail, bookings)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Created, 2)
	require.Equal(t, []string{"deleteTerminal", "replace"}, order)
	assert.Equal(t, int64(1), deletedCourtID)
	assert.Equal(t, "2025-06-01", deletedDay.Format(domain.DateFormat))
}

func TestExecute_DeleteTerminalFailure(t *testing.T) {
	replaceCalled := false
	avail := &mockAvailabilityRepository{
		replaceForDayFunc: func(ctx context.Context, courtID int64, day time.Time, slots []*domain.Availability) ([]*domain.Availability, error) {
			replaceCalled = true
			return slots, nil
		},
	}
	bookings := &mockBookingRepository{
		deleteTerminalForCourtDayFunc: func(ctx context.Context, courtID int64, day time.Time) error {
			return errors.New("connection reset")
		},
	}

	uc := newTestUseCase(t, &mockCourtRepository{}, avail, bookings)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, replaceCalled)
}

func TestExecute_StorageFailure(t *testing.T) {
	avail := &mockAvailabilityRepository{
		replaceForDayFunc: func(ctx context.Context, courtID int64, day time.Time, slots []*domain.Availability) ([]*domain.Availability, error) {
			return nil, errors.New("connection reset")
		},
	}

	uc := newTestUseCase(t, &mockCourtRepository{}, avail, &mockBookingRepository{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
