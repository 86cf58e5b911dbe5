package domain

// PaymentStatus represents the status of a booking's payment
// Платежи живут в PaymentService; здесь только статус для гейта отмены
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentCancelled PaymentStatus = "cancelled"
)
