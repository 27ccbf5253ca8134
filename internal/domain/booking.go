package domain

import (
	"time"

	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// AllStatuses список всех статусов заявки
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
}

// IsTerminal returns true once an admin has decided the request
func (s BookingStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransition reports whether the status may change to next.
// A request is decided exactly once: pending -> approved | rejected.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	return s == StatusPending && next.IsTerminal()
}

// BookingRequest represents a customer's request for pet care over a date range
type BookingRequest struct {
	ID          int64
	CustomerID  int64
	PetID       int64
	ServiceType ServiceType
	StartDate   types.Date // inclusive
	EndDate     types.Date // inclusive
	Status      BookingStatus
	Message     *string
	AdminNotes  *string

	// Denormalized from the pet directory
	PetName string

	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidRange returns true if end_date >= start_date
func (b *BookingRequest) HasValidRange() bool {
	return !b.EndDate.Before(b.StartDate)
}

// Covers returns true if the date lies in the closed interval [StartDate, EndDate]
func (b *BookingRequest) Covers(date types.Date) bool {
	return !date.Before(b.StartDate) && !date.After(b.EndDate)
}

// Overlaps returns true if the booking shares at least one day with [from, to]
func (b *BookingRequest) Overlaps(from, to types.Date) bool {
	return !b.EndDate.Before(from) && !b.StartDate.After(to)
}

// Days returns the number of calendar days covered (0 for an invalid range)
func (b *BookingRequest) Days() int {
	if !b.HasValidRange() {
		return 0
	}
	return b.StartDate.DaysUntil(b.EndDate) + 1
}

// IsApproved returns true if the booking consumes capacity
func (b *BookingRequest) IsApproved() bool {
	return b.Status == StatusApproved
}

// BookingsFilter фильтр для выборки заявок. Все поля опциональны.
// From/To выбирают заявки, пересекающиеся с периодом [From, To].
type BookingsFilter struct {
	CustomerID  *int64
	Status      *BookingStatus
	ServiceType *ServiceType
	From        *types.Date
	To          *types.Date
}
