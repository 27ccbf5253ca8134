package events

import (
	"strconv"
	"time"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// Типы событий жизненного цикла заявки
const (
	TypeBookingCreated = "booking.created"
	TypeBookingDecided = "booking.decided"
)

// BookingEvent событие по заявке для внешних потребителей (уведомления, аналитика)
type BookingEvent struct {
	Type        string     `json:"type"`
	BookingID   int64      `json:"bookingId"`
	CustomerID  int64      `json:"customerId"`
	PetID       int64      `json:"petId"`
	ServiceType string     `json:"serviceType"`
	StartDate   types.Date `json:"startDate"`
	EndDate     types.Date `json:"endDate"`
	Status      string     `json:"status"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

// NewBookingEvent строит событие из заявки
func NewBookingEvent(eventType string, booking *domain.BookingRequest, occurredAt time.Time) BookingEvent {
	return BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		CustomerID:  booking.CustomerID,
		PetID:       booking.PetID,
		ServiceType: string(booking.ServiceType),
		StartDate:   booking.StartDate,
		EndDate:     booking.EndDate,
		Status:      string(booking.Status),
		OccurredAt:  occurredAt.UTC(),
	}
}

// Key ключ сообщения: события одной заявки попадают в одну партицию
func (e BookingEvent) Key() string {
	return strconv.FormatInt(e.BookingID, 10)
}
