package create_booking

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден у клиента
	ErrPetNotFound = errors.New("create_booking: pet not found for customer")

	// ErrPetDirectoryUnavailable возвращается, когда справочник питомцев недоступен
	ErrPetDirectoryUnavailable = errors.New("create_booking: pet directory unavailable")

	// ErrInvalidDateRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidDateRange = errors.New("create_booking: end date is before start date")

	// ErrStartInPast возвращается, когда дата начала в прошлом
	ErrStartInPast = errors.New("create_booking: start date is in the past")

	// ErrStayTooLong возвращается, когда период превышает допустимое количество дней
	ErrStayTooLong = errors.New("create_booking: stay is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
