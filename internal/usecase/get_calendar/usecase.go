package get_calendar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/PetSitting-BookingService/internal/availability"
	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	capacityRepo "github.com/m04kA/PetSitting-BookingService/internal/infra/storage/capacity"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// UseCase use case для календаря заявок в админке
type UseCase struct {
	bookingRepo  BookingRepository
	capacityRepo CapacityRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	capacityRepo CapacityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		capacityRepo: capacityRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Режим и опорная дата
	view, err := availability.ParseViewMode(req.View)
	if err != nil {
		uc.logger.Warn("GetCalendar: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ref := req.Date
	if ref.IsZero() {
		ref = types.DateOf(uc.timeProvider.Now())
	}

	from, to := availability.VisibleRange(view, ref)
	uc.logger.Info("GetCalendar: view=%s, date=%s, grid=%s..%s", view, ref, from, to)

	// 2. Загружаем заявки всех статусов и емкость параллельно
	var (
		bookings  []*domain.BookingRequest
		settings  []*domain.CapacitySetting
		overrides []*domain.CapacityOverride
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.ListInRange(gCtx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = uc.capacityRepo.ListSettings(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		overrides, err = uc.capacityRepo.ListOverrides(gCtx, capacityRepo.OverridesFilter{From: &from, To: &to})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetCalendar: failed to load data: %v", err)
		return nil, fmt.Errorf("%w: GetCalendar - load data: %v", ErrInternal, err)
	}

	// 3. Агрегация (учитывает только approved) и проекция на сетку
	index := availability.NewCapacityIndex(settings, overrides)
	records := availability.AggregateWithIndex(bookings, index)
	cells := availability.Project(view, ref, bookings, records, index)

	// 4. Фильтр по услуге применяется только к спискам заявок, емкость остается полной
	if req.ServiceType != nil {
		for i := range cells {
			cells[i].Bookings = filterByService(cells[i].Bookings, *req.ServiceType)
		}
	}

	return &Response{
		View:      view,
		Reference: ref,
		From:      from,
		To:        to,
		Previous:  availability.Step(view, ref, -1),
		Next:      availability.Step(view, ref, 1),
		Cells:     cells,
	}, nil
}

func filterByService(bookings []*domain.BookingRequest, serviceType domain.ServiceType) []*domain.BookingRequest {
	filtered := make([]*domain.BookingRequest, 0, len(bookings))
	for _, b := range bookings {
		if b.ServiceType == serviceType {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
