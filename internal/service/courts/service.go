package courts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/CourtBookingService/internal/service/courts/models"
)

// Service сервис для работы с площадками
type Service struct {
	courtRepo   CourtRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(
	courtRepo CourtRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		courtRepo:   courtRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает новую площадку
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Create: creating court name=%q", req.Name)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	court := &domain.Court{
		Name:         strings.TrimSpace(req.Name),
		Location:     strings.TrimSpace(req.Location),
		PricePerHour: req.PricePerHour,
		Tags:         req.Tags,
	}
	if court.Tags == nil {
		court.Tags = []string{}
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: court id=%d created", created.ID)
	return models.FromDomainCourt(created), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("GetByID: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourt(court), nil
}

// List возвращает все площадки
func (s *Service) List(ctx context.Context) (*models.CourtListResponse, error) {
	courts, err := s.courtRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourtList(courts), nil
}

// Delete удаляет площадку
// Запрещено, пока на площадку ссылается хотя бы одно нетерминальное
// бронирование. Проверка и удаление выполняются в одной транзакции
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting court id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		activeCount, err := s.bookingRepo.CountActiveByCourtID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Delete - count active bookings: %v", ErrInternal, err)
		}
		if activeCount > 0 {
			s.logger.Warn("Delete: court id=%d has %d active bookings, delete refused", id, activeCount)
			return ErrCourtHasActiveBookings
		}

		if err := s.courtRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				return ErrCourtNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: court id=%d deleted", id)
	return nil
}

// validateCreateRequest валидирует входные данные создания площадки
func validateCreateRequest(req *models.CreateCourtRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCourtNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxCourtNameLength)
	}
	if len(strings.TrimSpace(req.Location)) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location must be at most %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}
	if req.PricePerHour < 0 {
		return fmt.Errorf("%w: pricePerHour must not be negative", ErrInvalidInput)
	}
	if len(req.Tags) > domain.MaxTagsPerCourt {
		return fmt.Errorf("%w: at most %d tags are allowed", ErrInvalidInput, domain.MaxTagsPerCourt)
	}
	return nil
}
