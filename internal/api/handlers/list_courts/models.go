package list_courts

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/service/courts/models"
)

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

// CourtListResponse HTTP response model
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// FromServiceResponse конвертирует DTO сервиса в HTTP response
func FromServiceResponse(list *models.CourtListResponse) *CourtListResponse {
	courtList := make([]CourtResponse, len(list.Courts))
	for i, c := range list.Courts {
		courtList[i] = CourtResponse{
			ID:           c.ID,
			Name:         c.Name,
			Location:     c.Location,
			PricePerHour: c.PricePerHour,
			Tags:         c.Tags,
			CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:    c.UpdatedAt.UTC().Format(time.RFC3339),
		}
	}
	return &CourtListResponse{Courts: courtList}
}
