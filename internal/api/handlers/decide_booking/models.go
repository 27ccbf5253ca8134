package decide_booking

import "github.com/m04kA/PetSitting-BookingService/internal/service/bookings/models"

// DecideBookingRequest HTTP request model
type DecideBookingRequest struct {
	Status     string  `json:"status" validate:"required,oneof=approved rejected"`
	AdminNotes *string `json:"adminNotes,omitempty" validate:"omitempty,max=1000"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *DecideBookingRequest) ToServiceRequest() *models.DecideRequest {
	return &models.DecideRequest{
		Status:     r.Status,
		AdminNotes: r.AdminNotes,
	}
}
