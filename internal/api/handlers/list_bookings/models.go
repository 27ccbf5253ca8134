package list_bookings

import (
	"net/url"

	"github.com/m04kA/PetSitting-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров; пустые значения пропускаются
func ToServiceRequest(query url.Values) *models.ListAdminBookingsRequest {
	return &models.ListAdminBookingsRequest{
		Status:      optional(query, "status"),
		ServiceType: optional(query, "serviceType"),
		From:        optional(query, "from"),
		To:          optional(query, "to"),
	}
}

func optional(query url.Values, key string) *string {
	value := query.Get(key)
	if value == "" {
		return nil
	}
	return &value
}
