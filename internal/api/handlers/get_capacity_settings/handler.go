package get_capacity_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetSitting-BookingService/internal/api/handlers"
	"github.com/m04kA/PetSitting-BookingService/internal/api/middleware"
	"github.com/m04kA/PetSitting-BookingService/internal/service/capacity"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/admin/capacity/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/capacity/settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListSettings(r.Context(), caller)
	if err != nil {
		if errors.Is(err, capacity.ErrAccessDenied) {
			h.logger.Warn("GET /admin/capacity/settings - Access denied: user_id=%d", caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /admin/capacity/settings - Failed to get settings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/capacity/settings - Settings retrieved successfully: count=%d", len(result.Settings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
