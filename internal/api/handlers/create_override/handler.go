package create_override

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetSitting-BookingService/internal/api/handlers"
	"github.com/m04kA/PetSitting-BookingService/internal/api/middleware"
	"github.com/m04kA/PetSitting-BookingService/internal/service/capacity"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "некорректные данные исключения"
)

type Handler struct {
	service CapacityService
	logger  Logger
}

func NewHandler(service CapacityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/capacity/overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/capacity/overrides - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateOverrideRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /admin/capacity/overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateOverride(r.Context(), caller, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrAccessDenied):
			h.logger.Warn("POST /admin/capacity/overrides - Access denied: user_id=%d", caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, capacity.ErrInvalidInput):
			h.logger.Warn("POST /admin/capacity/overrides - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/capacity/overrides - Failed to create override: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/capacity/overrides - Override created successfully: override_id=%d, date=%s",
		result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
