package domain

import "time"

// Period represents the part of day a slot starts in
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// Availability represents a single reservable time window of a court.
// Времена хранятся в UTC; вводятся администратором в операционной таймзоне
type Availability struct {
	ID        int64
	CourtID   int64
	Day       time.Time // Календарная дата (без времени, в операционной таймзоне)
	StartAt   time.Time // UTC
	EndAt     time.Time // UTC
	Period    Period
	Active    bool
	CreatedBy int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration возвращает длительность слота
func (a *Availability) Duration() time.Duration {
	return a.EndAt.Sub(a.StartAt)
}

// StartsWithin возвращает true, если начало слота ближе d от now
func (a *Availability) StartsWithin(now time.Time, d time.Duration) bool {
	return a.StartAt.Sub(now) < d
}

// PeriodForStart classifies a slot start into morning/afternoon/evening.
// Час берется в операционной таймзоне, не в UTC
func PeriodForStart(startAt time.Time, loc *time.Location) Period {
	hour := startAt.In(loc).Hour()
	switch {
	case hour < 12:
		return PeriodMorning
	case hour < 18:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}
