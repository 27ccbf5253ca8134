package save_capacity_settings

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
	msgDuplicateScope     = "для одной услуги указано несколько настроек"
	msgInvalidData        = "некорректные данные емкости"
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

// Handle PUT /api/v1/admin/capacity/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		h.logger.Warn("PUT /admin/capacity/settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SaveSettingsRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /admin/capacity/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SaveSettings(r.Context(), caller, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrAccessDenied):
			h.logger.Warn("PUT /admin/capacity/settings - Access denied: user_id=%d", caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, capacity.ErrDuplicateScope):
			h.logger.Warn("PUT /admin/capacity/settings - Duplicate scope: %v", err)
			handlers.RespondBadRequest(w, msgDuplicateScope)

		case errors.Is(err, capacity.ErrInvalidInput):
			h.logger.Warn("PUT /admin/capacity/settings - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/capacity/settings - Failed to save settings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/capacity/settings - Settings saved successfully: count=%d, admin_id=%d",
		len(result.Settings), caller.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
