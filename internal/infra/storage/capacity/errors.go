package capacity

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда исключение емкости не найдено
	ErrOverrideNotFound = errors.New("capacity.repository: override not found")

	// ErrInvalidScope возвращается, когда в БД хранится неизвестный тип услуги
	ErrInvalidScope = errors.New("capacity.repository: invalid service type in scope column")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("capacity.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("capacity.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("capacity.repository: failed to scan row")
)
