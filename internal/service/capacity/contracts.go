package capacity

import (
	"context"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	capacityRepo "github.com/m04kA/PetSitting-BookingService/internal/infra/storage/capacity"
)

// CapacityRepository интерфейс репозитория настроек и исключений емкости
type CapacityRepository interface {
	ListSettings(ctx context.Context) ([]*domain.CapacitySetting, error)
	ReplaceSettings(ctx context.Context, settings []*domain.CapacitySetting) ([]*domain.CapacitySetting, error)
	ListOverrides(ctx context.Context, filter capacityRepo.OverridesFilter) ([]*domain.CapacityOverride, error)
	CreateOverride(ctx context.Context, override *domain.CapacityOverride) (*domain.CapacityOverride, error)
	DeleteOverride(ctx context.Context, id int64) error
}

// OccupancyCache кэш занятости, сбрасывается при любом изменении емкости
type OccupancyCache interface {
	Invalidate(ctx context.Context) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
