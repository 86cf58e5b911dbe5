package publish_availability

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
	publishAvailability "github.com/m04kA/CourtBookingService/internal/usecase/publish_availability"
)

// SlotRequest HTTP модель одного слота батча
type SlotRequest struct {
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// PublishAvailabilityRequest HTTP request model
type PublishAvailabilityRequest struct {
	Date  string        `json:"date" validate:"required"`
	Slots []SlotRequest `json:"slots" validate:"required,min=1,dive"`
}

// AvailabilityResponse HTTP модель слота
type AvailabilityResponse struct {
	ID        int64  `json:"id"`
	CourtID   int64  `json:"courtId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"` // RFC3339, UTC
	EndTime   string `json:"endTime"`   // RFC3339, UTC
	Period    string `json:"period"`
	Active    bool   `json:"active"`
	CreatedBy int64  `json:"createdBy"`
}

// PublishAvailabilityResponse HTTP response model
type PublishAvailabilityResponse struct {
	Created []AvailabilityResponse `json:"created"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PublishAvailabilityRequest) ToUseCaseRequest(courtID, createdBy int64) *publishAvailability.Request {
	slots := make([]publishAvailability.SlotInput, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = publishAvailability.SlotInput{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		}
	}

	return &publishAvailability.Request{
		CourtID:   courtID,
		CreatedBy: createdBy,
		Date:      r.Date,
		Slots:     slots,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *publishAvailability.Response) *PublishAvailabilityResponse {
	created := make([]AvailabilityResponse, len(resp.Created))
	for i, slot := range resp.Created {
		created[i] = toAvailabilityResponse(slot)
	}
	return &PublishAvailabilityResponse{Created: created}
}

func toAvailabilityResponse(slot *domain.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		ID:        slot.ID,
		CourtID:   slot.CourtID,
		Date:      slot.Day.Format(domain.DateFormat),
		StartTime: slot.StartAt.UTC().Format(time.RFC3339),
		EndTime:   slot.EndAt.UTC().Format(time.RFC3339),
		Period:    string(slot.Period),
		Active:    slot.Active,
		CreatedBy: slot.CreatedBy,
	}
}
