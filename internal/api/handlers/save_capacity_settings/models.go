package save_capacity_settings

import "github.com/m04kA/PetSitting-BookingService/internal/service/capacity/models"

// SettingItem HTTP модель одной настройки. serviceType=null задает суммарную емкость.
type SettingItem struct {
	ServiceType     *string `json:"serviceType" validate:"omitempty,servicetype"`
	DefaultCapacity int     `json:"defaultCapacity" validate:"gte=0,lte=1000"`
}

// SaveSettingsRequest HTTP request model: полный набор, существующие настройки перезаписываются
type SaveSettingsRequest struct {
	Settings []SettingItem `json:"settings" validate:"required,dive"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SaveSettingsRequest) ToServiceRequest() *models.SaveSettingsRequest {
	req := &models.SaveSettingsRequest{Settings: make([]models.SettingInput, 0, len(r.Settings))}
	for _, s := range r.Settings {
		req.Settings = append(req.Settings, models.SettingInput{
			ServiceType:     s.ServiceType,
			DefaultCapacity: s.DefaultCapacity,
		})
	}
	return req
}
