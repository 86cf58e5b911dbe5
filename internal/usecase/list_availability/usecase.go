package list_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/court"
)

// Request модель запроса списка доступных слотов
type Request struct {
	CourtID int64
	Date    *string // Опциональный фильтр "2025-06-01"
}

// Response модель ответа со слотами, отсортированными по началу
type Response struct {
	Availabilities []*domain.Availability
}

// UseCase use case получения доступных слотов площадки
type UseCase struct {
	courtRepo        CourtRepository
	availabilityRepo AvailabilityRepository
	location         *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	availabilityRepo AvailabilityRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:        courtRepo,
		availabilityRepo: availabilityRepo,
		location:         location,
		logger:           logger,
	}
}

// Execute возвращает активные слоты площадки, опционально за одну дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListAvailability: court=%d, date=%v", req.CourtID, req.Date)

	var day *time.Time
	if req.Date != nil {
		parsed, err := time.ParseInLocation(domain.DateFormat, *req.Date, uc.location)
		if err != nil {
			uc.logger.Warn("ListAvailability: invalid date filter %q", *req.Date)
			return nil, fmt.Errorf("%w: expected format %s", ErrInvalidDate, domain.DateFormat)
		}
		day = &parsed
	}

	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("ListAvailability: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("ListAvailability: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	slots, err := uc.availabilityRepo.ListActive(ctx, req.CourtID, day)
	if err != nil {
		uc.logger.Error("ListAvailability: failed to list slots for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	uc.logger.Info("ListAvailability: found %d active slots for court=%d", len(slots), req.CourtID)
	return &Response{Availabilities: slots}, nil
}
