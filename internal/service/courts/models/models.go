package models

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// CourtResponse DTO площадки для внешних слоев
type CourtResponse struct {
	ID           int64
	Name         string
	Location     string
	PricePerHour float64
	Tags         []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CourtListResponse список площадок
type CourtListResponse struct {
	Courts []*CourtResponse
}

// CreateCourtRequest запрос создания площадки
type CreateCourtRequest struct {
	Name         string
	Location     string
	PricePerHour float64
	Tags         []string
}

// FromDomainCourt конвертирует domain.Court в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:           c.ID,
		Name:         c.Name,
		Location:     c.Location,
		PricePerHour: c.PricePerHour,
		Tags:         c.Tags,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromDomainCourtList конвертирует список domain.Court в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	result := make([]*CourtResponse, len(courts))
	for i, c := range courts {
		result[i] = FromDomainCourt(c)
	}
	return &CourtListResponse{Courts: result}
}
