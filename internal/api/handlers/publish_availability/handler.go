package publish_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
	"github.com/m04kA/CourtBookingService/internal/api/middleware"
	publishAvailability "github.com/m04kA/CourtBookingService/internal/usecase/publish_availability"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidCourtID       = "некорректный ID площадки"
	msgValidationFailed     = "слоты не прошли валидацию"
	msgCourtNotFound        = "площадка не найдена"
	msgDayHasActiveBookings = "расписание дня с активными бронированиями не может быть заменено"
)

type Handler struct {
	useCase  PublishAvailabilityUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase PublishAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/courts/{courtId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil || courtID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "отсутствует ID пользователя")
		return
	}

	var req PublishAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courts/%d/availability - invalid request body: %v", courtID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Структурная валидация DTO; policy-валидация батча живет в usecase
	if err := h.validate.Struct(&req); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			h.logger.Warn("POST /courts/%d/availability - malformed request: %v", courtID, err)
			handlers.RespondValidationErrors(w, msgValidationFailed, structFieldErrors(validateErrs))
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(courtID, userID))
	if err != nil {
		var verrs *publishAvailability.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("POST /courts/%d/availability - batch rejected with %d violations",
				courtID, len(verrs.Errors))
			handlers.RespondValidationErrors(w, msgValidationFailed, batchFieldErrors(verrs))

		case errors.Is(err, publishAvailability.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, publishAvailability.ErrDayHasActiveBookings):
			handlers.RespondConflict(w, msgDayHasActiveBookings)

		default:
			h.logger.Error("POST /courts/%d/availability - failed: %v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courts/%d/availability - published %d slots by user=%d",
		courtID, len(result.Created), userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// structFieldErrors конвертирует ошибки validator/v10 в единый формат ответа
func structFieldErrors(errs validator.ValidationErrors) []handlers.FieldErrorItem {
	items := make([]handlers.FieldErrorItem, len(errs))
	for i, fe := range errs {
		items[i] = handlers.FieldErrorItem{
			Field:   fe.Namespace(),
			Message: "failed on rule: " + fe.Tag(),
		}
	}
	return items
}

// batchFieldErrors конвертирует накопленные usecase-ом нарушения батча
func batchFieldErrors(verrs *publishAvailability.ValidationErrors) []handlers.FieldErrorItem {
	items := make([]handlers.FieldErrorItem, len(verrs.Errors))
	for i, fe := range verrs.Errors {
		items[i] = handlers.FieldErrorItem{Field: fe.Field, Message: fe.Message}
	}
	return items
}
