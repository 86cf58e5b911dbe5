package publish_availability

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCourtNotFound возвращается, когда площадка не найдена
	ErrCourtNotFound = errors.New("publish_availability: court not found")

	// ErrDayHasActiveBookings возвращается при попытке заменить расписание дня,
	// слоты которого удерживаются нетерминальными бронированиями
	ErrDayHasActiveBookings = errors.New("publish_availability: day has active bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("publish_availability: internal error")
)

// FieldError нарушение одного правила валидации с путем до поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors полный список нарушений батча
// Валидация накапливает все ошибки, а не падает на первой,
// чтобы администратор мог исправить батч за один заход
type ValidationErrors struct {
	Errors []FieldError
}

// Error реализует интерфейс error
func (v *ValidationErrors) Error() string {
	parts := make([]string, len(v.Errors))
	for i, fe := range v.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "publish_availability: validation failed: " + strings.Join(parts, "; ")
}

// add добавляет нарушение
func (v *ValidationErrors) add(field, format string, args ...interface{}) {
	v.Errors = append(v.Errors, FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// hasErrors возвращает true, если есть хотя бы одно нарушение
func (v *ValidationErrors) hasErrors() bool {
	return len(v.Errors) > 0
}
