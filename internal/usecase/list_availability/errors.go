package list_availability

import "errors"

var (
	// ErrCourtNotFound возвращается, когда площадка не найдена
	ErrCourtNotFound = errors.New("list_availability: court not found")

	// ErrInvalidDate возвращается при некорректном фильтре по дате
	ErrInvalidDate = errors.New("list_availability: invalid date filter")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_availability: internal error")
)
