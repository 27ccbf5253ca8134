package availability

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jinzhu/now"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// ViewMode режим календаря в админке
type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
)

const (
	MonthGridDays = 42 // 6 недель, всегда полная сетка
	WeekDays      = 7
)

// ErrInvalidViewMode неизвестный режим календаря
var ErrInvalidViewMode = errors.New("invalid view mode")

// ParseViewMode разбирает режим календаря; пустая строка = month
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "", ViewMonth:
		return ViewMonth, nil
	case ViewWeek:
		return ViewWeek, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidViewMode, s)
	}
}

// ProjectedScopes области, для которых считается емкость ячейки: все услуги, затем Total
var ProjectedScopes = func() []domain.ServiceScope {
	scopes := make([]domain.ServiceScope, 0, len(domain.AllServiceTypes)+1)
	for _, t := range domain.AllServiceTypes {
		scopes = append(scopes, domain.ScopeOf(t))
	}
	return append(scopes, domain.TotalScope())
}()

// weekConfig неделя начинается с понедельника
var weekConfig = &now.Config{
	WeekStartDay: time.Monday,
	TimeLocation: time.UTC,
}

// CellCapacity занятость и емкость одной области в ячейке
type CellCapacity struct {
	Scope   domain.ServiceScope
	Current int
	Max     int
}

// IsOverCapacity true, если занятость превышает емкость
func (c CellCapacity) IsOverCapacity() bool {
	return c.Current > c.Max
}

// CalendarCell один день календарной сетки
type CalendarCell struct {
	Date           types.Date
	InCurrentMonth bool                     // в режиме week всегда true
	Bookings       []*domain.BookingRequest // заявки любого статуса, активные в этот день
	Capacity       []CellCapacity           // в порядке ProjectedScopes
}

// VisibleRange первый и последний день сетки.
// month: 42 дня начиная с понедельника не позже 1-го числа; week: понедельник..воскресенье.
func VisibleRange(view ViewMode, ref types.Date) (types.Date, types.Date) {
	anchor := ref
	days := WeekDays
	if view != ViewWeek {
		anchor = ref.FirstOfMonth()
		days = MonthGridDays
	}

	first := types.DateOf(weekConfig.With(anchor.Time()).BeginningOfWeek())
	return first, first.AddDays(days - 1)
}

// Step сдвигает опорную дату на delta месяцев (month) или недель (week)
func Step(view ViewMode, ref types.Date, delta int) types.Date {
	if view == ViewWeek {
		return ref.AddDays(WeekDays * delta)
	}
	return ref.AddMonths(delta)
}

// Project строит ячейки календаря для опорной даты.
//
// records результат Aggregate; если для слота записи нет, занятость
// досчитывается по подтвержденным заявкам: для услуги по совпадающему типу,
// для Total по всем типам. Емкость берется из индекса.
func Project(
	view ViewMode,
	ref types.Date,
	bookings []*domain.BookingRequest,
	records []domain.OccupancyRecord,
	index *CapacityIndex,
) []CalendarCell {
	first, last := VisibleRange(view, ref)

	byStart := sortedByStart(bookings)

	recorded := make(map[slotKey]int, len(records))
	for _, r := range records {
		recorded[slotKey{date: r.Date, scope: r.Scope}] = r.Current
	}

	cells := make([]CalendarCell, 0, first.DaysUntil(last)+1)
	for d := first; !d.After(last); d = d.AddDays(1) {
		active := activeOn(byStart, d)

		capacity := make([]CellCapacity, 0, len(ProjectedScopes))
		for _, scope := range ProjectedScopes {
			current, ok := recorded[slotKey{date: d, scope: scope}]
			if !ok {
				current = countApprovedOn(active, scope)
			}
			limit, _ := index.Resolve(d, scope)
			capacity = append(capacity, CellCapacity{
				Scope:   scope,
				Current: current,
				Max:     limit,
			})
		}

		cells = append(cells, CalendarCell{
			Date:           d,
			InCurrentMonth: view == ViewWeek || d.SameMonth(ref),
			Bookings:       active,
			Capacity:       capacity,
		})
	}

	return cells
}

// sortedByStart копия списка, отсортированная по дате начала и ID
func sortedByStart(bookings []*domain.BookingRequest) []*domain.BookingRequest {
	sorted := make([]*domain.BookingRequest, 0, len(bookings))
	for _, b := range bookings {
		if b != nil {
			sorted = append(sorted, b)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].StartDate.Equal(sorted[j].StartDate) {
			return sorted[i].StartDate.Before(sorted[j].StartDate)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

func activeOn(bookings []*domain.BookingRequest, date types.Date) []*domain.BookingRequest {
	active := make([]*domain.BookingRequest, 0)
	for _, b := range bookings {
		// список отсортирован по началу, дальше заявки только позже
		if b.StartDate.After(date) {
			break
		}
		if b.Covers(date) {
			active = append(active, b)
		}
	}
	return active
}

func countApprovedOn(active []*domain.BookingRequest, scope domain.ServiceScope) int {
	count := 0
	for _, b := range active {
		if b.IsApproved() && scope.Matches(b.ServiceType) {
			count++
		}
	}
	return count
}
