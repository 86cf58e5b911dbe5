package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/CourtBookingService/internal/integrations/paymentservice"
	"github.com/m04kA/CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/CourtBookingService/pkg/ptr"
)

// Service сервис жизненного цикла бронирований
// Владеет машиной статусов и гейтами отмены/удаления
type Service struct {
	bookingRepo        BookingRepository
	availabilityRepo   AvailabilityRepository
	paymentClient      PaymentServiceClient
	txManager          TransactionManager
	publisher          EventPublisher
	cancellationCutoff time.Duration
	timeProvider       TimeProvider
	logger             Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	paymentClient PaymentServiceClient,
	txManager TransactionManager,
	publisher EventPublisher,
	cancellationCutoff time.Duration,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:        bookingRepo,
		availabilityRepo:   availabilityRepo,
		paymentClient:      paymentClient,
		txManager:          txManager,
		publisher:          publisher,
		cancellationCutoff: cancellationCutoff,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только бронирования, где он клиент или создатель
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID && booking.CreatedBy != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCourtBookings получает бронирования площадки с фильтрацией
// по периоду, статусу и включению терминальных бронирований
func (s *Service) GetCourtBookings(ctx context.Context, req *models.GetCourtBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCourtBookings: fetching bookings for court=%d", req.CourtID)

	filter := domain.CourtBookingsFilter{
		CourtID:         req.CourtID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetCourtBookings: invalid status=%s for court=%d", *req.Status, req.CourtID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetByCourtWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCourtBookings: repository error for court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: GetCourtBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCourtBookings: successfully fetched %d bookings for court=%d", len(bookings), req.CourtID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Переходы возможны только из pending/confirmed. Переход в cancelled закрыт
// двумя гейтами: завершенный платёж и окно отмены перед началом слота.
// Побочный эффект выполняется в одной транзакции со сменой статуса:
// отмена возвращает слот в доступность, завершение оставляет его занятым
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d -> %s by user=%d", bookingID, req.Status, req.UserID)

	target, ok := domain.ParseBookingStatus(req.Status)
	if !ok || target == domain.StatusPending {
		s.logger.Warn("UpdateStatus: invalid target status=%q for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	var booking *domain.Booking

	// Чтение, проверка перехода и запись идут в одной транзакции:
	// строка бронирования блокируется при чтении, конкурирующая смена
	// статуса дождется коммита и увидит уже новый статус
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.getBooking(txCtx, bookingID)
		if err != nil {
			return err
		}

		if !booking.CanTransitionTo(target) {
			s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
				booking.Status, target, bookingID)
			return ErrInvalidTransition
		}

		slot, err := s.availabilityRepo.GetByID(txCtx, booking.AvailabilityID)
		if err != nil {
			s.logger.Error("UpdateStatus: failed to get availability id=%d: %v", booking.AvailabilityID, err)
			return fmt.Errorf("%w: UpdateStatus - failed to get availability: %v", ErrInternal, err)
		}

		if target == domain.StatusCancelled {
			if err := s.checkCancellationGates(txCtx, booking, slot); err != nil {
				return err
			}
			if err := s.bookingRepo.Cancel(txCtx, bookingID, ptr.Deref(req.Reason)); err != nil {
				return fmt.Errorf("%w: UpdateStatus - cancel booking: %v", ErrInternal, err)
			}
			// Отмененный слот снова доступен для бронирования
			if err := s.availabilityRepo.SetActive(txCtx, booking.AvailabilityID, true); err != nil {
				return fmt.Errorf("%w: UpdateStatus - restore slot: %v", ErrInternal, err)
			}
			return nil
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, target); err != nil {
			return fmt.Errorf("%w: UpdateStatus - update status: %v", ErrInternal, err)
		}
		// Завершенный слот остается занятым: сыгранное время нельзя
		// перепродать задним числом
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("UpdateStatus: transaction failed for booking id=%d: %v", bookingID, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%d moved %s -> %s", bookingID, booking.Status, target)

	if err := s.publisher.Publish(ctx, events.BookingEvent{
		Type:           events.TypeBookingStatusChanged,
		BookingID:      booking.ID,
		UserID:         booking.UserID,
		CourtID:        booking.CourtID,
		AvailabilityID: booking.AvailabilityID,
		Status:         string(target),
	}); err != nil {
		s.logger.Warn("UpdateStatus: failed to publish event for booking id=%d: %v", bookingID, err)
	}

	updated, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(updated), nil
}

// Delete физически удаляет бронирование
// Разрешено только для терминальных статусов (cancelled/completed)
func (s *Service) Delete(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", bookingID, userID)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if !booking.CanBeDeleted() {
		s.logger.Warn("Delete: booking id=%d in status=%s cannot be deleted", bookingID, booking.Status)
		return ErrCannotDelete
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", bookingID)
	return nil
}

// checkCancellationGates проверяет оба гейта отмены.
// Порядок фиксирован: платёж проверяется первым, но нарушение любого из
// гейтов запрещает отмену независимо от второго
func (s *Service) checkCancellationGates(ctx context.Context, booking *domain.Booking, slot *domain.Availability) error {
	payment, err := s.paymentClient.GetByBookingID(ctx, booking.ID)
	if err != nil && !errors.Is(err, paymentservice.ErrPaymentNotFound) {
		s.logger.Error("UpdateStatus: failed to get payment for booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	if payment != nil && domain.PaymentStatus(payment.Status) == domain.PaymentCompleted {
		s.logger.Warn("UpdateStatus: booking id=%d has completed payment, cancel refused", booking.ID)
		return ErrPaymentCompleted
	}

	now := s.timeProvider.Now()
	if slot.StartsWithin(now, s.cancellationCutoff) {
		s.logger.Warn("UpdateStatus: booking id=%d starts within %s, cancel refused",
			booking.ID, s.cancellationCutoff)
		return ErrCancellationWindowClosed
	}

	return nil
}

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return booking, nil
}
