package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidFilter возвращается при некорректном фильтре списка
	ErrInvalidFilter = errors.New("invalid bookings filter")
)

// Request модели

// ListCustomerBookingsRequest запрос заявок одного клиента
type ListCustomerBookingsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// ListAdminBookingsRequest запрос заявок для админки. Все фильтры опциональны.
type ListAdminBookingsRequest struct {
	Status      *string `json:"status,omitempty"`
	ServiceType *string `json:"serviceType,omitempty"`
	From        *string `json:"from,omitempty"` // "2025-10-01"
	To          *string `json:"to,omitempty"`   // "2025-10-31"
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAdminBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.ServiceType != nil {
		serviceType, err := domain.ParseServiceType(*r.ServiceType)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		filter.ServiceType = &serviceType
	}

	if r.From != nil {
		from, err := types.ParseDate(*r.From)
		if err != nil {
			return filter, fmt.Errorf("%w: from: %v", ErrInvalidFilter, err)
		}
		filter.From = &from
	}

	if r.To != nil {
		to, err := types.ParseDate(*r.To)
		if err != nil {
			return filter, fmt.Errorf("%w: to: %v", ErrInvalidFilter, err)
		}
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, fmt.Errorf("%w: to is before from", ErrInvalidFilter)
	}

	return filter, nil
}

// DecideRequest решение администратора по заявке
type DecideRequest struct {
	Status     string  `json:"status"` // approved | rejected
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// Response модели

// BookingResponse ответ с данными заявки
type BookingResponse struct {
	ID          int64   `json:"id"`
	CustomerID  int64   `json:"customerId"`
	PetID       int64   `json:"petId"`
	PetName     string  `json:"petName"`
	ServiceType string  `json:"serviceType"`
	StartDate   string  `json:"startDate"` // "2025-10-15"
	EndDate     string  `json:"endDate"`   // включительно
	Days        int     `json:"days"`
	Status      string  `json:"status"`
	Message     *string `json:"message,omitempty"`
	AdminNotes  *string `json:"adminNotes,omitempty"`
	DecidedAt   *string `json:"decidedAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком заявок
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.BookingRequest) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		PetID:       b.PetID,
		PetName:     b.PetName,
		ServiceType: string(b.ServiceType),
		StartDate:   b.StartDate.String(),
		EndDate:     b.EndDate.String(),
		Days:        b.Days(),
		Status:      string(b.Status),
		Message:     b.Message,
		AdminNotes:  b.AdminNotes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.DecidedAt != nil {
		decidedStr := b.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.BookingRequest) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.AllStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
}
