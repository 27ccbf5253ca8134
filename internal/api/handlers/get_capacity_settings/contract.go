package get_capacity_settings

import (
	"context"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/internal/service/capacity/models"
)

type CapacityService interface {
	ListSettings(ctx context.Context, caller domain.Caller) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
