package create_booking

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         int64 // ID клиента, бронирующего слот
	CourtID        int64 // ID площадки
	AvailabilityID int64 // ID слота
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	UserID         int64
	CourtID        int64
	AvailabilityID int64
	Status         string
	StartAt        time.Time // UTC
	EndAt          time.Time // UTC
	Period         domain.Period
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
