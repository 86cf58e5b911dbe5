package publish_availability

import (
	"context"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// CourtRepository интерфейс репозитория площадок
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// AvailabilityRepository интерфейс репозитория слотов
type AvailabilityRepository interface {
	ReplaceForDay(ctx context.Context, courtID int64, day time.Time, slots []*domain.Availability) ([]*domain.Availability, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountActiveForCourtDay(ctx context.Context, courtID int64, day time.Time) (int, error)
	DeleteTerminalForCourtDay(ctx context.Context, courtID int64, day time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
