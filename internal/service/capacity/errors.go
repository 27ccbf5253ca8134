package capacity

import "errors"

var (
	// ErrAccessDenied возвращается, когда у пользователя нет прав администратора
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDuplicateScope возвращается, когда в наборе настроек одна область встречается дважды
	ErrDuplicateScope = errors.New("duplicate capacity setting for scope")

	// ErrOverrideNotFound возвращается, когда исключение не найдено
	ErrOverrideNotFound = errors.New("capacity override not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
