package petdirectory

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден у клиента
	ErrPetNotFound = errors.New("pet not found for customer")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("petdirectory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("petdirectory client: invalid response")

	// ErrServiceDegraded возвращается, когда справочник недоступен (таймаут, 5xx, сеть)
	ErrServiceDegraded = errors.New("petdirectory unavailable")
)
