package publish_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/pkg/types"
)

// normalizedSlot слот после парсинга: абсолютные UTC моменты
type normalizedSlot struct {
	index   int
	startAt time.Time
	endAt   time.Time
}

// validateAndNormalize проверяет батч целиком и накапливает все нарушения.
// На выходе - либо нормализованные слоты (UTC + период), либо полный список
// нарушений с путями до полей
func validateAndNormalize(req *Request, now time.Time, policy Policy) ([]*domain.Availability, *ValidationErrors) {
	verrs := &ValidationErrors{}

	if len(req.Slots) == 0 {
		verrs.add("slots", "at least one slot is required")
		return nil, verrs
	}
	if len(req.Slots) > domain.MaxSlotsPerBatch {
		verrs.add("slots", "batch exceeds %d slots", domain.MaxSlotsPerBatch)
		return nil, verrs
	}

	day, err := time.ParseInLocation(domain.DateFormat, req.Date, policy.Location)
	if err != nil {
		verrs.add("date", "invalid date, expected format %s", domain.DateFormat)
		// Без даты слоты не нормализовать; формат времени всё равно проверяем
		for i, slot := range req.Slots {
			validateTimeFormats(verrs, i, slot)
		}
		return nil, verrs
	}

	normalized := make([]*normalizedSlot, 0, len(req.Slots))

	for i, slot := range req.Slots {
		start, end, ok := validateTimeFormats(verrs, i, slot)
		if !ok {
			continue
		}

		field := fmt.Sprintf("slots[%d]", i)

		startAt, err := start.OnDate(day, policy.Location)
		if err != nil {
			verrs.add(field+".startTime", "invalid time: %v", err)
			continue
		}
		endAt, err := end.OnDate(day, policy.Location)
		if err != nil {
			verrs.add(field+".endTime", "invalid time: %v", err)
			continue
		}

		// Слот не пересекает полночь: конец строго позже начала в тот же день
		if !endAt.After(startAt) {
			verrs.add(field, "endTime must be after startTime")
			continue
		}

		if endAt.Sub(startAt) < policy.MinSlotDuration {
			verrs.add(field, "slot duration must be at least %d minutes", int(policy.MinSlotDuration.Minutes()))
		}

		if startAt.Sub(now) < policy.MinLeadTime {
			verrs.add(field+".startTime", "slot must start at least %d minutes from now", int(policy.MinLeadTime.Minutes()))
		}

		normalized = append(normalized, &normalizedSlot{index: i, startAt: startAt, endAt: endAt})
	}

	validatePairwise(verrs, normalized, policy.MinSlotGap)

	if verrs.hasErrors() {
		return nil, verrs
	}

	result := make([]*domain.Availability, len(normalized))
	for i, ns := range normalized {
		result[i] = &domain.Availability{
			CourtID:   req.CourtID,
			Day:       day,
			StartAt:   ns.startAt,
			EndAt:     ns.endAt,
			Period:    domain.PeriodForStart(ns.startAt, policy.Location),
			Active:    true,
			CreatedBy: req.CreatedBy,
		}
	}

	return result, nil
}

// validateTimeFormats проверяет формат HH:MM обоих времен слота
func validateTimeFormats(verrs *ValidationErrors, index int, slot SlotInput) (types.TimeString, types.TimeString, bool) {
	field := fmt.Sprintf("slots[%d]", index)
	ok := true

	start, err := types.NewTimeStringFromString(slot.StartTime)
	if err != nil {
		verrs.add(field+".startTime", "invalid time, expected format HH:MM")
		ok = false
	}

	end, err := types.NewTimeStringFromString(slot.EndTime)
	if err != nil {
		verrs.add(field+".endTime", "invalid time, expected format HH:MM")
		ok = false
	}

	return start, end, ok
}

// validatePairwise проверяет дубликаты, пересечения и минимальный зазор
// между всеми парами слотов батча. Нарушение вешается на слот с большим индексом
func validatePairwise(verrs *ValidationErrors, slots []*normalizedSlot, minGap time.Duration) {
	for i := 0; i < len(slots); i++ {
		for j := 0; j < i; j++ {
			a, b := slots[j], slots[i]
			field := fmt.Sprintf("slots[%d]", b.index)

			if a.startAt.Equal(b.startAt) && a.endAt.Equal(b.endAt) {
				verrs.add(field, "duplicate of slots[%d]", a.index)
				continue
			}

			// Строгое пересечение интервалов
			if a.startAt.Before(b.endAt) && a.endAt.After(b.startAt) {
				verrs.add(field, "overlaps slots[%d]", a.index)
				continue
			}

			// Зазор между концом раннего и началом позднего
			gap := b.startAt.Sub(a.endAt)
			if b.startAt.Before(a.startAt) {
				gap = a.startAt.Sub(b.endAt)
			}
			if gap < minGap {
				verrs.add(field, "gap to slots[%d] is %d minutes, minimum is %d", a.index, int(gap.Minutes()), int(minGap.Minutes()))
			}
		}
	}
}
