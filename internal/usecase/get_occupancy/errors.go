package get_occupancy

import "errors"

var (
	// ErrInvalidRange возвращается, когда to раньше from
	ErrInvalidRange = errors.New("get_occupancy: to is before from")

	// ErrRangeTooWide возвращается, когда период превышает допустимое количество дней
	ErrRangeTooWide = errors.New("get_occupancy: range is too wide")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_occupancy: internal error")
)
