package bookings

import (
	"context"
	"time"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRequest, error)
	UpdateDecision(ctx context.Context, id int64, status domain.BookingStatus, adminNotes *string) (*domain.BookingRequest, error)
}

// OccupancyCache кэш занятости, сбрасывается после каждого решения
type OccupancyCache interface {
	Invalidate(ctx context.Context) error
}

// EventPublisher публикатор событий заявок
type EventPublisher interface {
	PublishBooking(ctx context.Context, event events.BookingEvent) error
}

// Metrics доменные метрики
type Metrics interface {
	BookingDecided(status string)
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
