package publish_availability

import (
	"context"
	"errors"
	"fmt"

	courtRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/court"
)

// UseCase use case публикации расписания дня площадки
type UseCase struct {
	courtRepo        CourtRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	txManager        TransactionManager
	policy           Policy
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:        courtRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		txManager:        txManager,
		policy:           policy,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute валидирует батч слотов и атомарно заменяет расписание дня.
// Замена destructive: прежний набор слотов за (площадка, дата) удаляется
// целиком. Замена запрещена, пока слоты дня удерживаются нетерминальными
// бронированиями - иначе бронирования остались бы без слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PublishAvailability: court=%d, date=%s, slots=%d, createdBy=%d",
		req.CourtID, req.Date, len(req.Slots), req.CreatedBy)

	now := uc.timeProvider.Now()

	// 1. Валидация батча с накоплением всех нарушений
	slots, verrs := validateAndNormalize(req, now, uc.policy)
	if verrs != nil {
		uc.logger.Warn("PublishAvailability: validation failed with %d violations for court=%d",
			len(verrs.Errors), req.CourtID)
		return nil, verrs
	}

	var result *Response

	// 2. Замена расписания дня - всё или ничего
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Площадка должна существовать
		if _, err := uc.courtRepo.GetByID(txCtx, req.CourtID); err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				return ErrCourtNotFound
			}
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		// 2.2. Гейт: день нельзя перезаписать, пока на его слотах висят
		// активные бронирования
		activeCount, err := uc.bookingRepo.CountActiveForCourtDay(txCtx, req.CourtID, slots[0].Day)
		if err != nil {
			return fmt.Errorf("%w: failed to count active bookings: %v", ErrInternal, err)
		}
		if activeCount > 0 {
			uc.logger.Warn("PublishAvailability: court=%d date=%s has %d active bookings, replace refused",
				req.CourtID, req.Date, activeCount)
			return ErrDayHasActiveBookings
		}

		// 2.3. Сначала убираем терминальные бронирования дня: они держат FK
		// на прежние слоты и без этого удаление слотов упало бы
		if err := uc.bookingRepo.DeleteTerminalForCourtDay(txCtx, req.CourtID, slots[0].Day); err != nil {
			return fmt.Errorf("%w: failed to delete terminal bookings: %v", ErrInternal, err)
		}

		// 2.4. Заменяем набор слотов целиком
		created, err := uc.availabilityRepo.ReplaceForDay(txCtx, req.CourtID, slots[0].Day, slots)
		if err != nil {
			return fmt.Errorf("%w: failed to replace slots: %v", ErrInternal, err)
		}

		result = &Response{Created: created}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCourtNotFound) && !errors.Is(err, ErrDayHasActiveBookings) {
			uc.logger.Error("PublishAvailability: transaction failed for court=%d: %v", req.CourtID, err)
		}
		return nil, err
	}

	uc.logger.Info("PublishAvailability: published %d slots for court=%d date=%s",
		len(result.Created), req.CourtID, req.Date)

	return result, nil
}
