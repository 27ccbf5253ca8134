package delete_override

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetSitting-BookingService/internal/api/handlers"
	"github.com/m04kA/PetSitting-BookingService/internal/api/middleware"
	"github.com/m04kA/PetSitting-BookingService/internal/service/capacity"
)

const (
	msgInvalidOverrideID = "некорректный ID исключения"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "исключение не найдено"
	msgForbidden         = "доступ запрещен"
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

// Handle DELETE /api/v1/admin/capacity/overrides/{overrideId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	overrideID, err := strconv.ParseInt(mux.Vars(r)["overrideId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/capacity/overrides/{id} - Invalid override ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOverrideID)
		return
	}

	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		h.logger.Warn("DELETE /admin/capacity/overrides/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteOverride(r.Context(), caller, overrideID); err != nil {
		switch {
		case errors.Is(err, capacity.ErrOverrideNotFound):
			h.logger.Warn("DELETE /admin/capacity/overrides/{id} - Override not found: override_id=%d", overrideID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, capacity.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/capacity/overrides/{id} - Access denied: user_id=%d", caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /admin/capacity/overrides/{id} - Failed to delete: override_id=%d, error=%v",
				overrideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/capacity/overrides/{id} - Override deleted: override_id=%d", overrideID)
	handlers.RespondNoContent(w)
}
