package models

import "errors"

var (
	// ErrInvalidValue возвращается при значении вне допустимого диапазона
	ErrInvalidValue = errors.New("invalid value")

	// ErrDuplicateScope возвращается при повторе области в наборе настроек
	ErrDuplicateScope = errors.New("duplicate scope")
)
