package decide_booking

import (
	"context"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Decide(ctx context.Context, id int64, caller domain.Caller, req *models.DecideRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
