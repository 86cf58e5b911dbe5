package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publisher публикует события бронирований в Kafka
type Publisher struct {
	writer *kafka.Writer
	source string
	log    Logger
}

// NewPublisher создает издателя событий бронирований
// Ключ партиционирования - booking id, чтобы события одного бронирования
// читались по порядку
func NewPublisher(brokers []string, topic, source string, log Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...interface{}) {}),
		ErrorLogger:  kafka.LoggerFunc(log.Error),
	}

	return &Publisher{
		writer: writer,
		source: source,
		log:    log,
	}
}

// Close закрывает writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Publish отправляет событие в топик
func (p *Publisher) Publish(ctx context.Context, event BookingEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.BookingID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.EventID)},
			{Key: HeaderEventType, Value: []byte(event.Type)},
			{Key: HeaderSource, Value: []byte(p.source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("events: failed to write message: %w", err)
	}

	p.log.Info("events: published %s for booking id=%d", event.Type, event.BookingID)
	return nil
}

// NopPublisher заглушка издателя, используется при выключенной Kafka
type NopPublisher struct{}

// Publish ничего не делает
func (NopPublisher) Publish(_ context.Context, _ BookingEvent) error {
	return nil
}
