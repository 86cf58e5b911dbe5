package models

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// BookingResponse DTO бронирования для внешних слоев
type BookingResponse struct {
	ID                 int64
	UserID             int64
	CourtID            int64
	AvailabilityID     int64
	Status             string
	CreatedBy          int64
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
}

// GetUserBookingsRequest запрос истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64
	Status *string
}

// GetCourtBookingsRequest запрос бронирований площадки
type GetCourtBookingsRequest struct {
	CourtID         int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// UpdateStatusRequest запрос смены статуса бронирования
type UpdateStatusRequest struct {
	UserID int64
	Status string
	Reason *string
}

// FromDomainBooking конвертирует domain.Booking в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		CourtID:            b.CourtID,
		AvailabilityID:     b.AvailabilityID,
		Status:             string(b.Status),
		CreatedBy:          b.CreatedBy,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result}
}
