package get_court_bookings

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/service/bookings/models"
)

// BookingResponse HTTP модель бронирования
type BookingResponse struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"userId"`
	CourtID            int64   `json:"courtId"`
	AvailabilityID     int64   `json:"availabilityId"`
	Status             string  `json:"status"`
	CreatedBy          int64   `json:"createdBy"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromServiceResponse конвертирует DTO сервиса в HTTP response
func FromServiceResponse(list *models.BookingListResponse) *BookingListResponse {
	bookingList := make([]BookingResponse, len(list.Bookings))
	for i, b := range list.Bookings {
		item := BookingResponse{
			ID:                 b.ID,
			UserID:             b.UserID,
			CourtID:            b.CourtID,
			AvailabilityID:     b.AvailabilityID,
			Status:             b.Status,
			CreatedBy:          b.CreatedBy,
			CancellationReason: b.CancellationReason,
			CreatedAt:          b.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:          b.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if b.CancelledAt != nil {
			cancelledAt := b.CancelledAt.UTC().Format(time.RFC3339)
			item.CancelledAt = &cancelledAt
		}
		bookingList[i] = item
	}
	return &BookingListResponse{Bookings: bookingList}
}
