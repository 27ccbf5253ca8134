package create_booking

import (
	"time"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	createBooking "github.com/m04kA/PetSitting-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model. Клиент берется из X-User-ID.
type CreateBookingRequest struct {
	PetID       int64   `json:"petId" validate:"required,gt=0"`
	ServiceType string  `json:"serviceType" validate:"required,servicetype"`
	StartDate   string  `json:"startDate" validate:"required,isodate"` // "2025-10-15"
	EndDate     string  `json:"endDate" validate:"required,isodate"`   // включительно
	Message     *string `json:"message,omitempty" validate:"omitempty,max=1000"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	CustomerID  int64   `json:"customerId"`
	PetID       int64   `json:"petId"`
	PetName     string  `json:"petName"`
	ServiceType string  `json:"serviceType"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Days        int     `json:"days"`
	Status      string  `json:"status"`
	Message     *string `json:"message,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case. Вызывается после валидации тегов.
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	start, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := types.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	serviceType, err := domain.ParseServiceType(r.ServiceType)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:  customerID,
		PetID:       r.PetID,
		ServiceType: serviceType,
		StartDate:   start,
		EndDate:     end,
		Message:     r.Message,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		CustomerID:  resp.CustomerID,
		PetID:       resp.PetID,
		PetName:     resp.PetName,
		ServiceType: string(resp.ServiceType),
		StartDate:   resp.StartDate.String(),
		EndDate:     resp.EndDate.String(),
		Days:        resp.Days,
		Status:      string(resp.Status),
		Message:     resp.Message,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
