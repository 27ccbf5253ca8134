package get_occupancy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/PetSitting-BookingService/internal/availability"
	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	capacityRepo "github.com/m04kA/PetSitting-BookingService/internal/infra/storage/capacity"
)

// UseCase use case для расчета занятости за период
type UseCase struct {
	bookingRepo  BookingRepository
	capacityRepo CapacityRepository
	cache        OccupancyCache
	metrics      Metrics
	maxRangeDays int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	capacityRepo CapacityRepository,
	cache OccupancyCache,
	metrics Metrics,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		capacityRepo: capacityRepo,
		cache:        cache,
		metrics:      metrics,
		maxRangeDays: maxRangeDays,
		logger:       logger,
	}
}

// Execute выполняет use case расчета занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOccupancy: from=%s, to=%s", req.From, req.To)

	// 1. Валидация периода
	if req.To.Before(req.From) {
		return nil, ErrInvalidRange
	}
	if days := req.From.DaysUntil(req.To) + 1; uc.maxRangeDays > 0 && days > uc.maxRangeDays {
		uc.logger.Warn("GetOccupancy: range of %d days exceeds %d", days, uc.maxRangeDays)
		return nil, fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooWide, days, uc.maxRangeDays)
	}

	// 2. Кэш. Ключ фиксируется один раз, чтобы Set не записал результат в новое поколение.
	key, err := uc.cache.Key(ctx, req.From, req.To)
	if err != nil {
		uc.logger.Warn("GetOccupancy: cache unavailable: %v", err)
	}
	if key != "" {
		records, found, err := uc.cache.Get(ctx, key)
		if err != nil {
			uc.logger.Warn("GetOccupancy: cache get failed: %v", err)
		}
		uc.metrics.CacheLookup(found)
		if found {
			return uc.respond(req, records, true), nil
		}
	}

	// 3. Загружаем заявки и емкость параллельно
	var (
		bookings  []*domain.BookingRequest
		settings  []*domain.CapacitySetting
		overrides []*domain.CapacityOverride
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.ListApprovedInRange(gCtx, req.From, req.To)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = uc.capacityRepo.ListSettings(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		overrides, err = uc.capacityRepo.ListOverrides(gCtx, capacityRepo.OverridesFilter{From: &req.From, To: &req.To})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetOccupancy: failed to load data: %v", err)
		return nil, fmt.Errorf("%w: GetOccupancy - load data: %v", ErrInternal, err)
	}

	// 4. Агрегация. Заявки могут выходить за границы периода, лишние дни отбрасываются.
	records := trimToRange(availability.Aggregate(bookings, settings, overrides), req)

	if key != "" {
		if err := uc.cache.Set(ctx, key, records); err != nil {
			uc.logger.Warn("GetOccupancy: cache set failed: %v", err)
		}
	}

	uc.logger.Info("GetOccupancy: %d bookings -> %d records", len(bookings), len(records))
	return uc.respond(req, records, false), nil
}

func (uc *UseCase) respond(req *Request, records []domain.OccupancyRecord, cached bool) *Response {
	summary := availability.Summarize(records)
	uc.metrics.SetOverCapacitySlots(summary.OverCapacity)

	if summary.NeedsAttention() {
		uc.logger.Warn("GetOccupancy: %d over-capacity and %d unresolved slots between %s and %s",
			summary.OverCapacity, summary.Unresolved, req.From, req.To)
	}

	return &Response{
		From:    req.From,
		To:      req.To,
		Records: records,
		Summary: summary,
		Cached:  cached,
	}
}

func trimToRange(records []domain.OccupancyRecord, req *Request) []domain.OccupancyRecord {
	trimmed := make([]domain.OccupancyRecord, 0, len(records))
	for _, r := range records {
		if r.Date.Before(req.From) || r.Date.After(req.To) {
			continue
		}
		trimmed = append(trimmed, r)
	}
	return trimmed
}
