package list_availability

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
	ListActive(ctx context.Context, courtID int64, day *time.Time) ([]*domain.Availability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
