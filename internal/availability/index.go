package availability

import (
	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// slotKey ключ слота (дата, область). Total это отдельный ключ, а не wildcard.
type slotKey struct {
	date  types.Date
	scope domain.ServiceScope
}

// CapacityIndex индекс настроек и исключений емкости для поиска за O(1)
type CapacityIndex struct {
	defaults  map[domain.ServiceScope]int
	overrides map[slotKey]int
}

// NewCapacityIndex строит индекс. При дубликатах побеждает первая запись.
func NewCapacityIndex(settings []*domain.CapacitySetting, overrides []*domain.CapacityOverride) *CapacityIndex {
	idx := &CapacityIndex{
		defaults:  make(map[domain.ServiceScope]int, len(settings)),
		overrides: make(map[slotKey]int, len(overrides)),
	}

	for _, s := range settings {
		if s == nil {
			continue
		}
		if _, exists := idx.defaults[s.Scope]; !exists {
			idx.defaults[s.Scope] = s.DefaultCapacity
		}
	}

	for _, o := range overrides {
		if o == nil {
			continue
		}
		key := slotKey{date: o.Date, scope: o.Scope}
		if _, exists := idx.overrides[key]; !exists {
			idx.overrides[key] = o.Capacity
		}
	}

	return idx
}

// Resolve возвращает емкость слота: исключение на дату > настройка по умолчанию > 0.
// resolved=false, если для слота нет ни исключения, ни настройки.
func (i *CapacityIndex) Resolve(date types.Date, scope domain.ServiceScope) (capacity int, resolved bool) {
	if i == nil {
		return 0, false
	}
	if capacity, ok := i.overrides[slotKey{date: date, scope: scope}]; ok {
		return capacity, true
	}
	if capacity, ok := i.defaults[scope]; ok {
		return capacity, true
	}
	return 0, false
}

// HasOverride проверяет, задано ли исключение для слота
func (i *CapacityIndex) HasOverride(date types.Date, scope domain.ServiceScope) bool {
	if i == nil {
		return false
	}
	_, ok := i.overrides[slotKey{date: date, scope: scope}]
	return ok
}
