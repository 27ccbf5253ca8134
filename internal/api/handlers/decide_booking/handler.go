package decide_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetSitting-BookingService/internal/api/handlers"
	"github.com/m04kA/PetSitting-BookingService/internal/api/middleware"
	"github.com/m04kA/PetSitting-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "заявка не найдена"
	msgForbidden          = "доступ запрещен"
	msgAlreadyDecided     = "по заявке уже принято решение"
	msgInvalidStatus      = "статус может быть только approved или rejected"
	msgInvalidData        = "некорректные данные решения"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/decision - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		h.logger.Warn("PATCH /admin/bookings/{id}/decision - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DecideBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Decide(r.Context(), bookingID, caller, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/decision - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/bookings/{id}/decision - Access denied: user_id=%d", caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrAlreadyDecided):
			h.logger.Warn("PATCH /admin/bookings/{id}/decision - Already decided: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyDecided)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/{id}/decision - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/decision - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/decision - Failed to decide: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/decision - Booking %s: booking_id=%d, admin_id=%d",
		result.Status, bookingID, caller.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
