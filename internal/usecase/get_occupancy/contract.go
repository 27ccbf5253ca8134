package get_occupancy

import (
	"context"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	capacityRepo "github.com/m04kA/PetSitting-BookingService/internal/infra/storage/capacity"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	ListApprovedInRange(ctx context.Context, from, to types.Date) ([]*domain.BookingRequest, error)
}

// CapacityRepository интерфейс репозитория емкости
type CapacityRepository interface {
	ListSettings(ctx context.Context) ([]*domain.CapacitySetting, error)
	ListOverrides(ctx context.Context, filter capacityRepo.OverridesFilter) ([]*domain.CapacityOverride, error)
}

// OccupancyCache кэш результатов агрегации
type OccupancyCache interface {
	Key(ctx context.Context, from, to types.Date) (string, error)
	Get(ctx context.Context, key string) ([]domain.OccupancyRecord, bool, error)
	Set(ctx context.Context, key string, records []domain.OccupancyRecord) error
}

// Metrics доменные метрики
type Metrics interface {
	SetOverCapacitySlots(n int)
	CacheLookup(hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
