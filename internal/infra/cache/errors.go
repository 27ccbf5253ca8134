package cache

import "errors"

var (
	// ErrRedis возвращается при ошибках обращения к Redis
	ErrRedis = errors.New("occupancy.cache: redis error")

	// ErrCodec возвращается, когда значение в кэше не удается (де)сериализовать
	ErrCodec = errors.New("occupancy.cache: codec error")
)
