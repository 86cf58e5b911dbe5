package publish_availability

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// Policy политика публикации слотов
// Location - операционная таймзона, в которой администратор вводит расписание
type Policy struct {
	Location        *time.Location
	MinLeadTime     time.Duration
	MinSlotDuration time.Duration
	MinSlotGap      time.Duration
}

// SlotInput один слот из батча администратора, времена в формате HH:MM
type SlotInput struct {
	StartTime string
	EndTime   string
}

// Request модель запроса на публикацию расписания дня
type Request struct {
	CourtID   int64
	CreatedBy int64
	Date      string // "2025-06-01"
	Slots     []SlotInput
}

// Response модель ответа с созданными слотами
type Response struct {
	Created []*domain.Availability
}
