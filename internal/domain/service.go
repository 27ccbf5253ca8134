package domain

import (
	"errors"
	"fmt"
)

// ServiceType категория услуги по уходу за животными
type ServiceType string

const (
	ServiceDogBoarding ServiceType = "hundepension"    // пансион для собак
	ServiceCatSitting  ServiceType = "katzenbetreuung" // присмотр за кошками
	ServiceDayCare     ServiceType = "tagesbetreuung"  // дневной уход
)

// ErrInvalidServiceType возвращается при неизвестном типе услуги
var ErrInvalidServiceType = errors.New("invalid service type")

// AllServiceTypes список всех услуг в порядке отображения
var AllServiceTypes = []ServiceType{
	ServiceDogBoarding,
	ServiceCatSitting,
	ServiceDayCare,
}

// ParseServiceType конвертирует строку в ServiceType с валидацией
func ParseServiceType(s string) (ServiceType, error) {
	for _, t := range AllServiceTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidServiceType, s)
}

// ServiceScope область действия емкости: либо суммарная (Total), либо конкретная услуга.
// Нулевое значение ServiceScope{} означает Total.
type ServiceScope struct {
	serviceType ServiceType
}

// TotalScope суммарная емкость по всем услугам
func TotalScope() ServiceScope {
	return ServiceScope{}
}

// ScopeOf емкость конкретной услуги
func ScopeOf(t ServiceType) ServiceScope {
	return ServiceScope{serviceType: t}
}

// ScopeFromNullable строит область из nullable значения (NULL в БД / null в JSON = Total)
func ScopeFromNullable(s *string) (ServiceScope, error) {
	if s == nil {
		return TotalScope(), nil
	}
	t, err := ParseServiceType(*s)
	if err != nil {
		return ServiceScope{}, err
	}
	return ScopeOf(t), nil
}

// IsTotal true для суммарной области
func (s ServiceScope) IsTotal() bool {
	return s.serviceType == ""
}

// ServiceType возвращает услугу и false для Total
func (s ServiceScope) ServiceType() (ServiceType, bool) {
	return s.serviceType, !s.IsTotal()
}

// Nullable значение для колонки service_type / поля JSON (nil для Total)
func (s ServiceScope) Nullable() *string {
	if s.IsTotal() {
		return nil
	}
	v := string(s.serviceType)
	return &v
}

// Matches проверяет, относится ли услуга к области. Total соответствует любой услуге.
func (s ServiceScope) Matches(t ServiceType) bool {
	return s.IsTotal() || s.serviceType == t
}

// Order порядок сортировки: услуги в порядке AllServiceTypes, затем Total
func (s ServiceScope) Order() int {
	for i, t := range AllServiceTypes {
		if s.serviceType == t {
			return i
		}
	}
	return len(AllServiceTypes)
}

func (s ServiceScope) String() string {
	if s.IsTotal() {
		return "total"
	}
	return string(s.serviceType)
}
