package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a user's claim on a single availability slot
type Booking struct {
	ID             int64
	UserID         int64
	CourtID        int64
	AvailabilityID int64
	Status         BookingStatus
	CreatedBy      int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true while the booking holds its availability slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true for cancelled and completed bookings
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// CanBeDeleted returns true if the booking may be hard-deleted
// Бронирования в активных статусах физически не удаляются
func (b *Booking) CanBeDeleted() bool {
	return b.IsTerminal()
}

// CanTransitionTo reports whether the status machine allows the transition.
// Переходы возможны только из pending/confirmed; cancelled и completed терминальны
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	if !b.IsActive() {
		return false
	}

	switch target {
	case StatusConfirmed:
		return b.Status == StatusPending
	case StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// ParseBookingStatus валидирует строковое значение статуса
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// UserBookingsFilter фильтр для истории бронирований пользователя
type UserBookingsFilter struct {
	UserID int64
	Status *BookingStatus
}

// CourtBookingsFilter фильтр для получения бронирований площадки
type CourtBookingsFilter struct {
	CourtID         int64
	StartDate       *time.Time // Начало периода (опционально)
	EndDate         *time.Time // Конец периода (опционально)
	Status          *BookingStatus
	IncludeInactive bool // Включать ли терминальные бронирования
}
