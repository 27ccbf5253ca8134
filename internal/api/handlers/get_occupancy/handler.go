package get_occupancy

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetSitting-BookingService/internal/api/handlers"
	getOccupancy "github.com/m04kA/PetSitting-BookingService/internal/usecase/get_occupancy"
)

const (
	msgInvalidDates = "некорректный формат дат, ожидается from и to в формате YYYY-MM-DD"
	msgInvalidRange = "дата to раньше даты from"
	msgRangeTooWide = "слишком длинный период"
)

type Handler struct {
	useCase GetOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/occupancy?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req, err := ToUseCaseRequest(query.Get("from"), query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /admin/occupancy - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getOccupancy.ErrInvalidRange):
			h.logger.Warn("GET /admin/occupancy - Invalid range: from=%s, to=%s", req.From, req.To)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getOccupancy.ErrRangeTooWide):
			h.logger.Warn("GET /admin/occupancy - Range too wide: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooWide)

		default:
			h.logger.Error("GET /admin/occupancy - Failed to get occupancy: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/occupancy - Occupancy retrieved: from=%s, to=%s, records=%d, cached=%t",
		req.From, req.To, len(result.Records), result.Cached)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
