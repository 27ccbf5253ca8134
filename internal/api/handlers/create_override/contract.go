package create_override

import (
	"context"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/internal/service/capacity/models"
)

type CapacityService interface {
	CreateOverride(ctx context.Context, caller domain.Caller, req *models.CreateOverrideRequest) (*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
