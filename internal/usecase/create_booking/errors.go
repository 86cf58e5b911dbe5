package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не существует или принадлежит
	// другой площадке
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят нетерминальным
	// бронированием или деактивирован
	ErrSlotAlreadyBooked = errors.New("create_booking: slot already booked")

	// ErrSlotInPast возвращается при попытке забронировать начавшийся слот
	ErrSlotInPast = errors.New("create_booking: slot is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
