package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	capacityRepo "github.com/m04kA/PetSitting-BookingService/internal/infra/storage/capacity"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	ListInRange(ctx context.Context, from, to types.Date) ([]*domain.BookingRequest, error)
}

// CapacityRepository интерфейс репозитория емкости
type CapacityRepository interface {
	ListSettings(ctx context.Context) ([]*domain.CapacitySetting, error)
	ListOverrides(ctx context.Context, filter capacityRepo.OverridesFilter) ([]*domain.CapacityOverride, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
