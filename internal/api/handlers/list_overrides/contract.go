package list_overrides

import (
	"context"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/internal/service/capacity/models"
)

type CapacityService interface {
	ListOverrides(ctx context.Context, caller domain.Caller, req *models.ListOverridesRequest) (*models.OverridesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
