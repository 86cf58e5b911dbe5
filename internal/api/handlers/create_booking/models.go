package create_booking

import (
	"time"

	createBooking "github.com/m04kA/CourtBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	AvailabilityID int64 `json:"availabilityId" validate:"required,gt=0"`
}

// BookingResponse HTTP модель бронирования
type BookingResponse struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"userId"`
	CourtID        int64  `json:"courtId"`
	AvailabilityID int64  `json:"availabilityId"`
	Status         string `json:"status"`
	StartTime      string `json:"startTime"` // RFC3339, UTC
	EndTime        string `json:"endTime"`   // RFC3339, UTC
	Period         string `json:"period"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(courtID, userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:         userID,
		CourtID:        courtID,
		AvailabilityID: r.AvailabilityID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		CourtID:        resp.CourtID,
		AvailabilityID: resp.AvailabilityID,
		Status:         resp.Status,
		StartTime:      resp.StartAt.UTC().Format(time.RFC3339),
		EndTime:        resp.EndAt.UTC().Format(time.RFC3339),
		Period:         string(resp.Period),
		CreatedAt:      resp.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
