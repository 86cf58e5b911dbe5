package delete_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
	"github.com/m04kA/CourtBookingService/internal/service/courts"
)

const (
	msgInvalidCourtID        = "некорректный ID площадки"
	msgCourtNotFound         = "площадка не найдена"
	msgCourtHasActiveBooking = "площадка с активными бронированиями не может быть удалена"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/courts/{courtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil || courtID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	if err := h.service.Delete(r.Context(), courtID); err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, courts.ErrCourtHasActiveBookings):
			handlers.RespondForbidden(w, msgCourtHasActiveBooking)

		default:
			h.logger.Error("DELETE /courts/%d - failed: %v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /courts/%d - deleted", courtID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
