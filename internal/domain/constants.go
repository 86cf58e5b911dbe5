package domain

// Default booking policy values
const (
	DefaultMinLeadTimeMinutes        = 60
	DefaultMinSlotDurationMinutes    = 60
	DefaultMinSlotGapMinutes         = 20
	DefaultCancellationCutoffMinutes = 60
)

// Business validation constants
const (
	MaxSlotsPerBatch   = 48
	MaxCourtNameLength = 100
	MaxLocationLength  = 200
	MaxTagsPerCourt    = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalStatuses список терминальных статусов бронирования
// Слот, на который ссылаются только терминальные бронирования, не считается занятым
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// ActiveStatuses список статусов, при которых бронирование удерживает слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
