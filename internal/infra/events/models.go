package events

import "time"

// Типы событий бронирований
const (
	TypeBookingCreated       = "booking.created"
	TypeBookingStatusChanged = "booking.status_changed"
)

// Заголовки сообщений
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
)

// BookingEvent событие жизненного цикла бронирования
type BookingEvent struct {
	EventID        string    `json:"eventId"`
	Type           string    `json:"type"`
	BookingID      int64     `json:"bookingId"`
	UserID         int64     `json:"userId"`
	CourtID        int64     `json:"courtId"`
	AvailabilityID int64     `json:"availabilityId"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
