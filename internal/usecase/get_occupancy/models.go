package get_occupancy

import (
	"github.com/m04kA/PetSitting-BookingService/internal/availability"
	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// Request модель запроса занятости за период
type Request struct {
	From types.Date // Первый день (включительно)
	To   types.Date // Последний день (включительно)
}

// Response модель ответа с занятостью
type Response struct {
	From    types.Date
	To      types.Date
	Records []domain.OccupancyRecord // Только слоты с подтвержденными заявками
	Summary availability.Summary
	Cached  bool // Результат взят из кэша
}
