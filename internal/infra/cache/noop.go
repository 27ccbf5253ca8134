package cache

import (
	"context"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// Noop кэш-заглушка, когда Redis выключен в конфигурации. Всегда промах.
type Noop struct{}

func (Noop) Key(context.Context, types.Date, types.Date) (string, error) { return "", nil }

func (Noop) Get(context.Context, string) ([]domain.OccupancyRecord, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, string, []domain.OccupancyRecord) error { return nil }

func (Noop) Invalidate(context.Context) error { return nil }
