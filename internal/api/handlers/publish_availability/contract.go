package publish_availability

import (
	"context"

	publishAvailability "github.com/m04kA/CourtBookingService/internal/usecase/publish_availability"
)

// PublishAvailabilityUseCase интерфейс use case публикации расписания
type PublishAvailabilityUseCase interface {
	Execute(ctx context.Context, req *publishAvailability.Request) (*publishAvailability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
