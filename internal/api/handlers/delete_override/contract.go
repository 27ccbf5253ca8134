package delete_override

import (
	"context"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
)

type CapacityService interface {
	DeleteOverride(ctx context.Context, caller domain.Caller, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
