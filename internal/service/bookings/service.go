package bookings

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PetSitting-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PetSitting-BookingService/internal/infra/events"
	"github.com/m04kA/PetSitting-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с заявками на бронирование
type Service struct {
	bookingRepo  BookingRepository
	cache        OccupancyCache
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	bookingRepo BookingRepository,
	cache OccupancyCache,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		cache:        cache,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает заявку по ID.
// Клиент видит только свои заявки, администратор видит все.
func (s *Service) GetByID(ctx context.Context, id int64, caller domain.Caller) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, caller.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !caller.CanAccessCustomer(booking.CustomerID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", caller.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// ListForCustomer получает заявки клиента, опционально по статусу
func (s *Service) ListForCustomer(
	ctx context.Context,
	caller domain.Caller,
	req *models.ListCustomerBookingsRequest,
) (*models.BookingListResponse, error) {
	s.logger.Info("ListForCustomer: fetching bookings for customer=%d by user=%d, status=%v",
		req.CustomerID, caller.UserID, req.Status)

	if !caller.CanAccessCustomer(req.CustomerID) {
		s.logger.Warn("ListForCustomer: access denied for user=%d to customer=%d", caller.UserID, req.CustomerID)
		return nil, ErrAccessDenied
	}

	filter := domain.BookingsFilter{CustomerID: &req.CustomerID}
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListForCustomer: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListForCustomer: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: ListForCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForCustomer: fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// ListForAdmin получает заявки с фильтрами по статусу, услуге и периоду
func (s *Service) ListForAdmin(
	ctx context.Context,
	caller domain.Caller,
	req *models.ListAdminBookingsRequest,
) (*models.BookingListResponse, error) {
	if !caller.IsAdmin() {
		s.logger.Warn("ListForAdmin: access denied for user=%d", caller.UserID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListForAdmin: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListForAdmin: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForAdmin: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Decide подтверждает или отклоняет заявку. Решение принимается один раз.
// После успешного решения сбрасывает кэш занятости и публикует booking.decided.
func (s *Service) Decide(
	ctx context.Context,
	id int64,
	caller domain.Caller,
	req *models.DecideRequest,
) (*models.BookingResponse, error) {
	s.logger.Info("Decide: booking id=%d, status=%s by user=%d", id, req.Status, caller.UserID)

	if !caller.IsAdmin() {
		s.logger.Warn("Decide: access denied for user=%d", caller.UserID)
		return nil, ErrAccessDenied
	}

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil || !domain.StatusPending.CanTransition(status) {
		s.logger.Warn("Decide: invalid target status=%s for booking id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	if req.AdminNotes != nil && utf8.RuneCountInString(*req.AdminNotes) > domain.MaxAdminNotesLength {
		return nil, fmt.Errorf("%w: admin notes longer than %d characters", ErrInvalidInput, domain.MaxAdminNotesLength)
	}

	booking, err := s.bookingRepo.UpdateDecision(ctx, id, status, req.AdminNotes)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Decide: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrAlreadyDecided):
			s.logger.Warn("Decide: booking id=%d already decided", id)
			return nil, ErrAlreadyDecided
		default:
			s.logger.Error("Decide: repository error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
		}
	}

	// Решение уже сохранено: ошибки кэша и брокера только логируются
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("Decide: failed to invalidate occupancy cache: %v", err)
	}

	event := events.NewBookingEvent(events.TypeBookingDecided, booking, s.timeProvider.Now())
	if err := s.publisher.PublishBooking(ctx, event); err != nil {
		s.logger.Warn("Decide: failed to publish event for booking id=%d: %v", id, err)
	}

	s.metrics.BookingDecided(string(status))

	s.logger.Info("Decide: booking id=%d is now %s", id, status)
	return models.FromDomainBooking(booking), nil
}
