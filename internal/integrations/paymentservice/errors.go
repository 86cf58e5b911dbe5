package paymentservice

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда у бронирования нет платежа
	ErrPaymentNotFound = errors.New("paymentservice: payment not found")

	// ErrInvalidResponse возвращается при некорректном ответе PaymentService
	ErrInvalidResponse = errors.New("paymentservice: invalid response")

	// ErrInternal возвращается при сетевых и прочих внутренних ошибках
	ErrInternal = errors.New("paymentservice: internal error")
)
