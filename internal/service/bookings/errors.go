package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus возвращается при неизвестном значении статуса
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается, когда переход запрещен машиной статусов
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrPaymentCompleted возвращается при попытке отменить бронирование
	// с завершенным платежом
	ErrPaymentCompleted = errors.New("cannot cancel a booking with a completed payment")

	// ErrCancellationWindowClosed возвращается при отмене ближе часа к началу слота
	ErrCancellationWindowClosed = errors.New("cannot cancel within the cancellation window before start")

	// ErrCannotDelete возвращается при попытке удалить нетерминальное бронирование
	ErrCannotDelete = errors.New("only cancelled or completed bookings can be deleted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
