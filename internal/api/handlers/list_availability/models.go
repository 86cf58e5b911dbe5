package list_availability

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
	listAvailability "github.com/m04kA/CourtBookingService/internal/usecase/list_availability"
)

// AvailabilityResponse HTTP модель слота
type AvailabilityResponse struct {
	ID        int64  `json:"id"`
	CourtID   int64  `json:"courtId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"` // RFC3339, UTC
	EndTime   string `json:"endTime"`   // RFC3339, UTC
	Period    string `json:"period"`
	Active    bool   `json:"active"`
}

// ListAvailabilityResponse HTTP response model
type ListAvailabilityResponse struct {
	Availabilities []AvailabilityResponse `json:"availabilities"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAvailability.Response) *ListAvailabilityResponse {
	availabilities := make([]AvailabilityResponse, len(resp.Availabilities))
	for i, slot := range resp.Availabilities {
		availabilities[i] = AvailabilityResponse{
			ID:        slot.ID,
			CourtID:   slot.CourtID,
			Date:      slot.Day.Format(domain.DateFormat),
			StartTime: slot.StartAt.UTC().Format(time.RFC3339),
			EndTime:   slot.EndAt.UTC().Format(time.RFC3339),
			Period:    string(slot.Period),
			Active:    slot.Active,
		}
	}
	return &ListAvailabilityResponse{Availabilities: availabilities}
}
