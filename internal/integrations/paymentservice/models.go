package paymentservice

import "time"

// Payment платёж бронирования в PaymentService
type Payment struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"bookingId"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"` // pending | completed | cancelled
	CreatedAt time.Time `json:"createdAt"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
