package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetSitting-BookingService/internal/api/handlers"
	"github.com/m04kA/PetSitting-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/PetSitting-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgPetNotFound        = "питомец не найден"
	msgDirectoryDown      = "справочник питомцев временно недоступен"
	msgInvalidDateRange   = "дата окончания раньше даты начала"
	msgStartInPast        = "дата начала в прошлом"
	msgStayTooLong        = "слишком длинный период бронирования"
	msgInvalidData        = "некорректные данные заявки"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrPetNotFound):
			h.logger.Warn("POST /bookings - Pet not found: customer_id=%d, pet_id=%d", customerID, req.PetID)
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, createBooking.ErrPetDirectoryUnavailable):
			h.logger.Error("POST /bookings - Pet directory unavailable: customer_id=%d, error=%v", customerID, err)
			handlers.RespondServiceUnavailable(w, msgDirectoryDown)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: customer_id=%d", customerID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrStartInPast):
			h.logger.Warn("POST /bookings - Start in past: customer_id=%d", customerID)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createBooking.ErrStayTooLong):
			h.logger.Warn("POST /bookings - Stay too long: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid data: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d",
		result.ID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
