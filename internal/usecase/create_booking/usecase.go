package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/internal/infra/events"
	availabilityRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/booking"
)

// UseCase use case создания бронирования
// Главный инвариант: на один слот в любой момент существует не более одного
// нетерминального бронирования, даже при конкурирующих запросах
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	publisher        EventPublisher
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		publisher:        publisher,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute атомарно занимает слот и создает бронирование.
// Проверка-и-запись выполняется одной SERIALIZABLE транзакцией с блокировкой
// строки слота (FOR UPDATE); частичный уникальный индекс в БД страхует от
// гонки на случай обхода проверки. Из двух одновременных запросов на один
// слот ровно один завершается успехом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, availability=%d",
		req.UserID, req.CourtID, req.AvailabilityID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		result *domain.Booking
		slot   *domain.Availability
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем слот с блокировкой строки - точка сериализации
		// конкурирующих запросов на этот слот
		loaded, err := uc.availabilityRepo.GetByID(txCtx, req.AvailabilityID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
		slot = loaded

		// Слот другой площадки для клиента неотличим от несуществующего
		if slot.CourtID != req.CourtID {
			return ErrSlotNotFound
		}

		if !slot.Active {
			return ErrSlotAlreadyBooked
		}

		if !slot.StartAt.After(now) {
			return ErrSlotInPast
		}

		// 2. Проверяем, что слот не удерживается нетерминальным бронированием
		_, err = uc.bookingRepo.GetActiveByAvailabilityID(txCtx, req.AvailabilityID)
		if err == nil {
			return ErrSlotAlreadyBooked
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: failed to check existing booking: %v", ErrInternal, err)
		}

		// 3. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			UserID:         req.UserID,
			CourtID:        req.CourtID,
			AvailabilityID: req.AvailabilityID,
			Status:         domain.StatusPending,
			CreatedBy:      req.UserID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotAlreadyBooked) {
				return ErrSlotAlreadyBooked
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 4. Слот занят - снимаем флаг active
		if err := uc.availabilityRepo.SetActive(txCtx, req.AvailabilityID, false); err != nil {
			return fmt.Errorf("%w: failed to consume slot: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotAlreadyBooked):
			uc.logger.Warn("CreateBooking: slot id=%d already booked, user=%d lost the race",
				req.AvailabilityID, req.UserID)
		case errors.Is(err, ErrSlotNotFound), errors.Is(err, ErrSlotInPast):
			uc.logger.Warn("CreateBooking: %v (availability=%d)", err, req.AvailabilityID)
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for slot id=%d",
		result.ID, req.AvailabilityID)

	// Событие публикуется вне транзакции; сбой публикации не откатывает бронь
	if err := uc.publisher.Publish(ctx, events.BookingEvent{
		Type:           events.TypeBookingCreated,
		BookingID:      result.ID,
		UserID:         result.UserID,
		CourtID:        result.CourtID,
		AvailabilityID: result.AvailabilityID,
		Status:         string(result.Status),
	}); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:             result.ID,
		UserID:         result.UserID,
		CourtID:        result.CourtID,
		AvailabilityID: result.AvailabilityID,
		Status:         string(result.Status),
		StartAt:        slot.StartAt,
		EndAt:          slot.EndAt,
		Period:         slot.Period,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.AvailabilityID <= 0 {
		return fmt.Errorf("%w: availabilityID must be positive", ErrInvalidInput)
	}
	return nil
}
