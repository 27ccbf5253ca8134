package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetSitting-BookingService/internal/api/handlers"
	getCalendar "github.com/m04kA/PetSitting-BookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidQuery = "некорректные параметры: date в формате YYYY-MM-DD, serviceType из списка услуг"
	msgInvalidView  = "некорректный режим календаря, допустимо month или week"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/calendar?view=month|week&date=YYYY-MM-DD&serviceType=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/calendar - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getCalendar.ErrInvalidInput) {
			h.logger.Warn("GET /admin/calendar - Invalid view: %v", err)
			handlers.RespondBadRequest(w, msgInvalidView)
			return
		}

		h.logger.Error("GET /admin/calendar - Failed to build calendar: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/calendar - Calendar built: view=%s, from=%s, to=%s", result.View, result.From, result.To)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
