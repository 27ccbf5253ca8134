package list_overrides

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/m04kA/PetSitting-BookingService/internal/api/handlers"
	"github.com/m04kA/PetSitting-BookingService/internal/api/middleware"
	"github.com/m04kA/PetSitting-BookingService/internal/service/capacity"
	"github.com/m04kA/PetSitting-BookingService/internal/service/capacity/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/admin/capacity/overrides
// Query params: from, to, serviceType (опционально; serviceType=total для суммарной емкости)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/capacity/overrides - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	req := &models.ListOverridesRequest{
		From:        optional(query, "from"),
		To:          optional(query, "to"),
		ServiceType: optional(query, "serviceType"),
	}

	result, err := h.service.ListOverrides(r.Context(), caller, req)
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrAccessDenied):
			h.logger.Warn("GET /admin/capacity/overrides - Access denied: user_id=%d", caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, capacity.ErrInvalidInput):
			h.logger.Warn("GET /admin/capacity/overrides - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/capacity/overrides - Failed to get overrides: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/capacity/overrides - Overrides retrieved successfully: count=%d", len(result.Overrides))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func optional(query url.Values, key string) *string {
	value := query.Get(key)
	if value == "" {
		return nil
	}
	return &value
}
