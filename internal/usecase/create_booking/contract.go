package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/internal/infra/events"
	"github.com/m04kA/PetSitting-BookingService/internal/integrations/petdirectory"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.BookingRequest) (*domain.BookingRequest, error)
}

// PetDirectoryClient интерфейс клиента справочника питомцев
type PetDirectoryClient interface {
	GetPetWithGracefulDegradation(ctx context.Context, customerID, petID int64) (*petdirectory.Pet, error)
}

// EventPublisher публикатор событий заявок
type EventPublisher interface {
	PublishBooking(ctx context.Context, event events.BookingEvent) error
}

// Metrics доменные метрики
type Metrics interface {
	BookingCreated(serviceType string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
