package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/internal/infra/events"
	"github.com/m04kA/PetSitting-BookingService/internal/integrations/petdirectory"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// UseCase use case для создания заявки клиентом
type UseCase struct {
	bookingRepo    BookingRepository
	petClient      PetDirectoryClient
	publisher      EventPublisher
	metrics        Metrics
	txManager      TransactionManager
	timeProvider   TimeProvider
	maxBookingDays int
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	petClient PetDirectoryClient,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	maxBookingDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		petClient:      petClient,
		publisher:      publisher,
		metrics:        metrics,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		maxBookingDays: maxBookingDays,
		logger:         logger,
	}
}

// Execute выполняет use case создания заявки.
// Емкость не проверяется: заявка создается в статусе pending и не занимает место до решения администратора.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, pet=%d, serviceType=%s, start=%s, end=%s",
		req.CustomerID, req.PetID, req.ServiceType, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация периода относительно текущей даты
	now := uc.timeProvider.Now()
	if err := validateDates(req.StartDate, req.EndDate, types.DateOf(now), uc.maxBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем, что питомец принадлежит клиенту
	pet, err := uc.petClient.GetPetWithGracefulDegradation(ctx, req.CustomerID, req.PetID)
	if err != nil {
		if errors.Is(err, petdirectory.ErrPetNotFound) {
			uc.logger.Warn("CreateBooking: pet id=%d not found for customer id=%d", req.PetID, req.CustomerID)
			return nil, ErrPetNotFound
		}
		uc.logger.Error("CreateBooking: failed to get pet id=%d: %v", req.PetID, err)
		return nil, fmt.Errorf("%w: %v", ErrPetDirectoryUnavailable, err)
	}

	var result *domain.BookingRequest

	// 4. Сохраняем заявку в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking := &domain.BookingRequest{
			CustomerID:  req.CustomerID,
			PetID:       req.PetID,
			PetName:     pet.Name,
			ServiceType: req.ServiceType,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Status:      domain.StatusPending,
			Message:     req.Message,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 5. Заявка сохранена: ошибка брокера только логируется
	event := events.NewBookingEvent(events.TypeBookingCreated, result, now)
	if err := uc.publisher.PublishBooking(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	uc.metrics.BookingCreated(string(result.ServiceType))

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return fromDomain(result), nil
}
