package availability

import (
	"sort"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
)

// Aggregate считает занятость по дням для каждой пары (дата, услуга).
//
// Учитываются только подтвержденные (approved) заявки. Каждая заявка занимает
// все дни закрытого интервала [StartDate, EndDate]; заявка с EndDate < StartDate
// не занимает ни одного дня. Результат разреженный: слоты без подтвержденных
// заявок не возвращаются. Заявка не попадает в суммарную (Total) область,
// каждая область считается независимо.
//
// Функция чистая: входные данные не изменяются, результат отсортирован по
// дате и порядку области и не зависит от порядка входных заявок.
func Aggregate(
	bookings []*domain.BookingRequest,
	settings []*domain.CapacitySetting,
	overrides []*domain.CapacityOverride,
) []domain.OccupancyRecord {
	return AggregateWithIndex(bookings, NewCapacityIndex(settings, overrides))
}

// AggregateWithIndex как Aggregate, но с заранее построенным индексом емкости
func AggregateWithIndex(bookings []*domain.BookingRequest, index *CapacityIndex) []domain.OccupancyRecord {
	counts := countApproved(bookings)

	records := make([]domain.OccupancyRecord, 0, len(counts))
	for key, current := range counts {
		capacity, resolved := index.Resolve(key.date, key.scope)
		records = append(records, domain.OccupancyRecord{
			Date:     key.date,
			Scope:    key.scope,
			Current:  current,
			Max:      capacity,
			Resolved: resolved,
		})
	}

	sortRecords(records)
	return records
}

// countApproved занятость по слотам только для подтвержденных заявок
func countApproved(bookings []*domain.BookingRequest) map[slotKey]int {
	counts := make(map[slotKey]int)

	for _, b := range bookings {
		if b == nil || !b.IsApproved() {
			continue
		}

		scope := domain.ScopeOf(b.ServiceType)
		// Цикл по дате без времени: невалидный диапазон дает пустую итерацию
		for d := b.StartDate; !d.After(b.EndDate); d = d.AddDays(1) {
			counts[slotKey{date: d, scope: scope}]++
		}
	}

	return counts
}

func sortRecords(records []domain.OccupancyRecord) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].Scope.Order() < records[j].Scope.Order()
	})
}

// Summary сводка по занятости для админки
type Summary struct {
	Slots        int // количество непустых слотов
	OverCapacity int // слоты, где current > max
	Unresolved   int // слоты без настройки и исключения
	Peak         int // максимальная занятость одного слота
}

// NeedsAttention true, если есть перегруженные или ненастроенные слоты
func (s Summary) NeedsAttention() bool {
	return s.OverCapacity > 0 || s.Unresolved > 0
}

// Summarize считает сводку по записям занятости
func Summarize(records []domain.OccupancyRecord) Summary {
	summary := Summary{Slots: len(records)}

	for _, r := range records {
		if r.IsOverCapacity() {
			summary.OverCapacity++
		}
		if r.IsUnresolved() {
			summary.Unresolved++
		}
		if r.Current > summary.Peak {
			summary.Peak = r.Current
		}
	}

	return summary
}
