package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer публикует события заявок в Kafka
type Producer struct {
	writer *kafka.Writer
}

// NewProducer создает producer для топика. Hash-балансировщик сохраняет порядок событий одной заявки.
func NewProducer(brokers []string, topic string, writeTimeout time.Duration) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			WriteTimeout: writeTimeout,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishBooking отправляет событие заявки
func (p *Producer) PublishBooking(ctx context.Context, event BookingEvent) error {
	message, err := buildMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("%w: type=%s, booking_id=%d: %v", ErrPublish, event.Type, event.BookingID, err)
	}
	return nil
}

// Close дожидается отправки буфера и закрывает writer
func (p *Producer) Close() error {
	return p.writer.Close()
}

func buildMessage(event BookingEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	return kafka.Message{
		Key:   []byte(event.Key()),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}

// Noop publisher-заглушка, когда Kafka выключена в конфигурации
type Noop struct{}

func (Noop) PublishBooking(context.Context, BookingEvent) error { return nil }
