package publish_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

func testPolicy(t *testing.T) Policy {
	t.Helper()

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	return Policy{
		Location:        loc,
		MinLeadTime:     60 * time.Minute,
		MinSlotDuration: 60 * time.Minute,
		MinSlotGap:      20 * time.Minute,
	}
}

// testNow полночь 2025-06-01 в операционной таймзоне: все слоты дня
// проходят проверку lead time
func testNow(policy Policy) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, policy.Location)
}

func fieldsOf(verrs *ValidationErrors) []string {
	fields := make([]string, len(verrs.Errors))
	for i, fe := range verrs.Errors {
		fields[i] = fe.Field
	}
	return fields
}

func TestValidateAndNormalize_ValidBatch(t *testing.T) {
	policy := testPolicy(t)

	req := &Request{
		CourtID:   1,
		CreatedBy: 10,
		Date:      "2025-06-01",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "10:20", EndTime: "11:20"},
			{StartTime: "19:00", EndTime: "20:30"},
		},
	}

	slots, verrs := validateAndNormalize(req, testNow(policy), policy)
	require.Nil(t, verrs)
	require.Len(t, slots, 3)

	first := slots[0]
	assert.Equal(t, int64(1), first.CourtID)
	assert.Equal(t, int64(10), first.CreatedBy)
	assert.True(t, first.Active)
	// Sao Paulo UTC-3: 09:00 локально = 12:00 UTC
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), first.StartAt)
	assert.Equal(t, time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC), first.EndAt)

	// Период определяется локальным часом начала
	assert.Equal(t, domain.PeriodMorning, slots[0].Period)
	assert.Equal(t, domain.PeriodMorning, slots[1].Period)
	assert.Equal(t, domain.PeriodEvening, slots[2].Period)
}

func TestValidateAndNormalize_EmptyBatch(t *testing.T) {
	policy := testPolicy(t)

	_, verrs := validateAndNormalize(&Request{Date: "2025-06-01"}, testNow(policy), policy)
	require.NotNil(t, verrs)
	assert.Contains(t, fieldsOf(verrs), "slots")
}

func TestValidateAndNormalize_InvalidDate(t *testing.T) {
	policy := testPolicy(t)

	req := &Request{
		Date: "01.06.2025",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "bad", EndTime: "11:00"},
		},
	}

	_, verrs := validateAndNormalize(req, testNow(policy), policy)
	require.NotNil(t, verrs)

	// Дата не распарсилась, но формат времени слотов всё равно проверен
	fields := fieldsOf(verrs)
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "slots[1].startTime")
}

func TestValidateAndNormalize_Overlap(t *testing.T) {
	policy := testPolicy(t)

	req := &Request{
		Date: "2025-06-01",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "09:30", EndTime: "10:30"},
		},
	}

	_, verrs := validateAndNormalize(req, testNow(policy), policy)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "slots[1]", verrs.Errors[0].Field)
	assert.Contains(t, verrs.Errors[0].Message, "overlaps slots[0]")
}

func TestValidateAndNormalize_Duplicate(t *testing.T) {
	policy := testPolicy(t)

	req := &Request{
		Date: "2025-06-01",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "09:00", EndTime: "10:00"},
		},
	}

	_, verrs := validateAndNormalize(req, testNow(policy), policy)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "slots[1]", verrs.Errors[0].Field)
	assert.Contains(t, verrs.Errors[0].Message, "duplicate of slots[0]")
}

func TestValidateAndNormalize_GapTooSmall(t *testing.T) {
	policy := testPolicy(t)

	// Зазор 5 минут при минимуме 20
	req := &Request{
		Date: "2025-06-01",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "10:05", EndTime: "11:05"},
		},
	}

	_, verrs := validateAndNormalize(req, testNow(policy), policy)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "slots[1]", verrs.Errors[0].Field)
	assert.Contains(t, verrs.Errors[0].Message, "gap to slots[0] is 5 minutes")
}

func TestValidateAndNormalize_GapIndependentOfOrder(t *testing.T) {
	policy := testPolicy(t)

	// Поздний слот идет в батче первым - зазор считается так же
	req := &Request{
		Date: "2025-06-01",
		Slots: []SlotInput{
			{StartTime: "10:05", EndTime: "11:05"},
			{StartTime: "09:00", EndTime: "10:00"},
		},
	}

	_, verrs := validateAndNormalize(req, testNow(policy), policy)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "slots[1]", verrs.Errors[0].Field)
}

func TestValidateAndNormalize_EndBeforeStart(t *testing.T) {
	policy := testPolicy(t)

	req := &Request{
		Date: "2025-06-01",
		Slots: []SlotInput{
			{StartTime: "10:00", EndTime: "09:00"},
			{StartTime: "11:00", EndTime: "11:00"},
		},
	}

	_, verrs := validateAndNormalize(req, testNow(policy), policy)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 2)
	assert.Equal(t, "slots[0]", verrs.Errors[0].Field)
	assert.Equal(t, "slots[1]", verrs.Errors[1].Field)
}

func TestValidateAndNormalize_DurationTooShort(t *testing.T) {
	policy := testPolicy(t)

	req := &Request{
		Date: "2025-06-01",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "09:30"},
		},
	}

	_, verrs := validateAndNormalize(req, testNow(policy), policy)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Contains(t, verrs.Errors[0].Message, "at least 60 minutes")
}

func TestValidateAndNormalize_LeadTimeViolation(t *testing.T) {
	policy := testPolicy(t)

	// "Сейчас" 08:30 локально, слот 09:00 - лишь 30 минут до начала
	now := time.Date(2025, 6, 1, 8, 30, 0, 0, policy.Location)

	req := &Request{
		Date: "2025-06-01",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00"},
		},
	}

	_, verrs := validateAndNormalize(req, now, policy)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "slots[0].startTime", verrs.Errors[0].Field)
	assert.Contains(t, verrs.Errors[0].Message, "at least 60 minutes from now")
}

func TestValidateAndNormalize_AccumulatesAllViolations(t *testing.T) {
	policy := testPolicy(t)

	// Три независимых нарушения в одном батче
	req := &Request{
		Date: "2025-06-01",
		Slots: []SlotInput{
			{StartTime: "9am", EndTime: "10:00"},
			{StartTime: "11:00", EndTime: "11:30"},
			{StartTime: "14:00", EndTime: "15:00"},
			{StartTime: "14:30", EndTime: "15:30"},
		},
	}

	_, verrs := validateAndNormalize(req, testNow(policy), policy)
	require.NotNil(t, verrs)

	fields := fieldsOf(verrs)
	assert.Contains(t, fields, "slots[0].startTime")
	assert.Contains(t, fields, "slots[1]")
	assert.Contains(t, fields, "slots[3]")
	assert.Len(t, verrs.Errors, 3)
}

func TestValidateAndNormalize_BatchTooLarge(t *testing.T) {
	policy := testPolicy(t)

	slots := make([]SlotInput, domain.MaxSlotsPerBatch+1)
	for i := range slots {
		slots[i] = SlotInput{StartTime: "09:00", EndTime: "10:00"}
	}

	_, verrs := validateAndNormalize(&Request{Date: "2025-06-01", Slots: slots}, testNow(policy), policy)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "slots", verrs.Errors[0].Field)
}
