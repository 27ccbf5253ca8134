package create_override

import "github.com/m04kA/PetSitting-BookingService/internal/service/capacity/models"

// CreateOverrideRequest HTTP request model
type CreateOverrideRequest struct {
	Date        string  `json:"date" validate:"required,isodate"` // "2025-12-24"
	ServiceType *string `json:"serviceType" validate:"omitempty,servicetype"`
	Capacity    int     `json:"capacity" validate:"gte=0,lte=1000"`
	Reason      *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateOverrideRequest) ToServiceRequest() *models.CreateOverrideRequest {
	return &models.CreateOverrideRequest{
		Date:        r.Date,
		ServiceType: r.ServiceType,
		Capacity:    r.Capacity,
		Reason:      r.Reason,
	}
}
