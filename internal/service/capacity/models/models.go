package models

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// totalParam значение query-параметра serviceType для суммарной области
const totalParam = "total"

// Request модели

// SettingInput настройка емкости; serviceType=null означает суммарную емкость
type SettingInput struct {
	ServiceType     *string `json:"serviceType"`
	DefaultCapacity int     `json:"defaultCapacity"`
}

// SaveSettingsRequest полный набор настроек, перезаписывает существующие
type SaveSettingsRequest struct {
	Settings []SettingInput `json:"settings"`
}

// ToDomain конвертирует и валидирует набор настроек
func (r *SaveSettingsRequest) ToDomain() ([]*domain.CapacitySetting, error) {
	settings := make([]*domain.CapacitySetting, 0, len(r.Settings))
	seen := make(map[domain.ServiceScope]struct{}, len(r.Settings))

	for i, in := range r.Settings {
		scope, err := domain.ScopeFromNullable(in.ServiceType)
		if err != nil {
			return nil, fmt.Errorf("settings[%d]: %w", i, err)
		}
		if err := validateCapacity(in.DefaultCapacity); err != nil {
			return nil, fmt.Errorf("settings[%d]: %w", i, err)
		}
		if _, dup := seen[scope]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateScope, scope)
		}
		seen[scope] = struct{}{}

		settings = append(settings, &domain.CapacitySetting{
			Scope:           scope,
			DefaultCapacity: in.DefaultCapacity,
		})
	}

	return settings, nil
}

// CreateOverrideRequest новое исключение емкости на дату
type CreateOverrideRequest struct {
	Date        string  `json:"date"` // "2025-12-24"
	ServiceType *string `json:"serviceType"`
	Capacity    int     `json:"capacity"`
	Reason      *string `json:"reason,omitempty"`
}

// ToDomain конвертирует и валидирует исключение
func (r *CreateOverrideRequest) ToDomain() (*domain.CapacityOverride, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	scope, err := domain.ScopeFromNullable(r.ServiceType)
	if err != nil {
		return nil, err
	}

	if err := validateCapacity(r.Capacity); err != nil {
		return nil, err
	}

	if r.Reason != nil && utf8.RuneCountInString(*r.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason longer than %d characters", ErrInvalidValue, domain.MaxReasonLength)
	}

	return &domain.CapacityOverride{
		Date:     date,
		Scope:    scope,
		Capacity: r.Capacity,
		Reason:   r.Reason,
	}, nil
}

// ListOverridesRequest фильтр исключений. serviceType=total выбирает суммарную область.
type ListOverridesRequest struct {
	From        *string
	To          *string
	ServiceType *string
}

// Response модели

// SettingResponse настройка емкости
type SettingResponse struct {
	ID              int64     `json:"id"`
	ServiceType     *string   `json:"serviceType"`
	DefaultCapacity int       `json:"defaultCapacity"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SettingsResponse список настроек
type SettingsResponse struct {
	Settings []SettingResponse `json:"settings"`
}

// OverrideResponse исключение емкости
type OverrideResponse struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`
	ServiceType *string   `json:"serviceType"`
	Capacity    int       `json:"capacity"`
	Reason      *string   `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OverridesResponse список исключений
type OverridesResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// Методы конвертации

// FromDomainSettings конвертирует настройки в DTO
func FromDomainSettings(settings []*domain.CapacitySetting) *SettingsResponse {
	resp := &SettingsResponse{Settings: make([]SettingResponse, 0, len(settings))}
	for _, s := range settings {
		resp.Settings = append(resp.Settings, SettingResponse{
			ID:              s.ID,
			ServiceType:     s.Scope.Nullable(),
			DefaultCapacity: s.DefaultCapacity,
			UpdatedAt:       s.UpdatedAt,
		})
	}
	return resp
}

// FromDomainOverride конвертирует исключение в DTO
func FromDomainOverride(o *domain.CapacityOverride) *OverrideResponse {
	if o == nil {
		return nil
	}
	return &OverrideResponse{
		ID:          o.ID,
		Date:        o.Date.String(),
		ServiceType: o.Scope.Nullable(),
		Capacity:    o.Capacity,
		Reason:      o.Reason,
		CreatedAt:   o.CreatedAt,
	}
}

// FromDomainOverrides конвертирует список исключений в DTO
func FromDomainOverrides(overrides []*domain.CapacityOverride) *OverridesResponse {
	resp := &OverridesResponse{Overrides: make([]OverrideResponse, 0, len(overrides))}
	for _, o := range overrides {
		if dto := FromDomainOverride(o); dto != nil {
			resp.Overrides = append(resp.Overrides, *dto)
		}
	}
	return resp
}

// ParseScopeParam разбирает query-параметр области: "total" или тип услуги
func ParseScopeParam(s string) (domain.ServiceScope, error) {
	if s == totalParam {
		return domain.TotalScope(), nil
	}
	return domain.ScopeFromNullable(&s)
}

func validateCapacity(capacity int) error {
	if capacity < 0 || capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between 0 and %d, got %d", ErrInvalidValue, domain.MaxCapacity, capacity)
	}
	return nil
}
