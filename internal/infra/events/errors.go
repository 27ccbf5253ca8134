package events

import "errors"

var (
	// ErrMarshal возвращается, когда событие не удается сериализовать
	ErrMarshal = errors.New("events: failed to marshal event")

	// ErrPublish возвращается при ошибке записи в Kafka
	ErrPublish = errors.New("events: failed to publish event")
)
