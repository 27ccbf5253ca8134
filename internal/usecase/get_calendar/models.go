package get_calendar

import (
	"github.com/m04kA/PetSitting-BookingService/internal/availability"
	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// Request модель запроса календаря
type Request struct {
	View        string              // month | week, пусто = month
	Date        types.Date          // Опорная дата, пусто = сегодня
	ServiceType *domain.ServiceType // Фильтр списков заявок в ячейках (на емкость не влияет)
}

// Response модель ответа с ячейками календаря
type Response struct {
	View      availability.ViewMode
	Reference types.Date
	From      types.Date // Первый день сетки
	To        types.Date // Последний день сетки
	Previous  types.Date // Опорная дата предыдущего месяца/недели
	Next      types.Date // Опорная дата следующего месяца/недели
	Cells     []availability.CalendarCell
}
