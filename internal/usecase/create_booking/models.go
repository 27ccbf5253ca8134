package create_booking

import (
	"time"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// Request модель запроса на создание заявки
type Request struct {
	CustomerID  int64              // ID клиента (из заголовка X-User-ID)
	PetID       int64              // ID питомца в справочнике
	ServiceType domain.ServiceType // Тип услуги
	StartDate   types.Date         // Первый день (включительно)
	EndDate     types.Date         // Последний день (включительно)
	Message     *string            // Сообщение для администратора (опционально)
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID          int64
	CustomerID  int64
	PetID       int64
	PetName     string
	ServiceType domain.ServiceType
	StartDate   types.Date
	EndDate     types.Date
	Days        int
	Status      domain.BookingStatus
	Message     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(b *domain.BookingRequest) *Response {
	return &Response{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		PetID:       b.PetID,
		PetName:     b.PetName,
		ServiceType: b.ServiceType,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Days:        b.Days(),
		Status:      b.Status,
		Message:     b.Message,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
