package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

const (
	defaultBroker = "kafka:9092"
	defaultTopic  = "feedback-events"
)

// Config - подключение к шине событий отзывов.
type Config struct {
	Brokers []string
	Topic   string
	GroupID string // нужен только консюмеру
}

func (c Config) withDefaults() Config {
	if len(c.Brokers) == 0 {
		c.Brokers = []string{defaultBroker}
	}
	if c.Topic == "" {
		c.Topic = defaultTopic
	}

	return c
}

// ReaderInterface интерфейс для Kafka Reader
type ReaderInterface interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// WriterInterface интерфейс для Kafka Writer
type WriterInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type EventProducer interface {
	SendEvent(ctx context.Context, event Event) error
	Close() error
}

type EventConsumer interface {
	Consume(ctx context.Context, handler func(context.Context, Event) error)
	Close() error
}
