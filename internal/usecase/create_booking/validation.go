package create_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.PetID <= 0 {
		return fmt.Errorf("%w: petID must be positive", ErrInvalidInput)
	}

	if _, err := domain.ParseServiceType(string(req.ServiceType)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.Message != nil && utf8.RuneCountInString(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message longer than %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	return nil
}

// validateDates проверяет период: конец не раньше начала, начало не в прошлом,
// длительность не больше maxDays (0 - без ограничения)
func validateDates(start, end, today types.Date, maxDays int) error {
	if end.Before(start) {
		return ErrInvalidDateRange
	}

	if start.Before(today) {
		return ErrStartInPast
	}

	if days := start.DaysUntil(end) + 1; maxDays > 0 && days > maxDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrStayTooLong, days, maxDays)
	}

	return nil
}
