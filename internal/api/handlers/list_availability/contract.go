package list_availability

import (
	"context"

	listAvailability "github.com/m04kA/CourtBookingService/internal/usecase/list_availability"
)

// ListAvailabilityUseCase интерфейс use case списка доступных слотов
type ListAvailabilityUseCase interface {
	Execute(ctx context.Context, req *listAvailability.Request) (*listAvailability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
