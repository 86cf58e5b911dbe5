package create_court

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/service/courts/models"
)

// CreateCourtRequest HTTP request model
type CreateCourtRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Location     string   `json:"location" validate:"max=200"`
	PricePerHour float64  `json:"pricePerHour" validate:"gte=0"`
	Tags         []string `json:"tags" validate:"max=10,dive,max=50"`
}

// CourtResponse HTTP модель площадки
type CourtResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	PricePerHour float64  `json:"pricePerHour"`
	Tags         []string `json:"tags"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCourtRequest) ToServiceRequest() *models.CreateCourtRequest {
	return &models.CreateCourtRequest{
		Name:         r.Name,
		Location:     r.Location,
		PricePerHour: r.PricePerHour,
		Tags:         r.Tags,
	}
}

// FromServiceResponse конвертирует DTO сервиса в HTTP response
func FromServiceResponse(c *models.CourtResponse) *CourtResponse {
	return &CourtResponse{
		ID:           c.ID,
		Name:         c.Name,
		Location:     c.Location,
		PricePerHour: c.PricePerHour,
		Tags:         c.Tags,
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
