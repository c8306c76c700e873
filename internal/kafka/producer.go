package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer публикует обезличенные события отзывов в шину.
// В сообщение попадает только категория и анонимизированная метка
// времени, адреса кошельков сюда не доходят.
type Producer struct {
	Writer WriterInterface // Используем интерфейс
	Logger *zap.SugaredLogger
}

func NewProducer(cfg Config, logger *zap.SugaredLogger) *Producer {
	cfg = cfg.withDefaults()

	return &Producer{
		Writer: &kafkaWriterWrapper{ // Обёртка над реальным Writer
			Writer: &kafka.Writer{
				Addr:  kafka.TCP(cfg.Brokers...),
				Topic: cfg.Topic,
				// Ключ сообщения - категория отзыва, поэтому события одной
				// категории приходят в одну партицию и агрегируются по порядку
				Balancer:     &kafka.Hash{},
				RequiredAcks: kafka.RequireOne,
			},
		},
		Logger: logger,
	}
}

// Обёртка для реализации интерфейса
type kafkaWriterWrapper struct {
	Writer *kafka.Writer
}

func (w *kafkaWriterWrapper) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return w.Writer.WriteMessages(ctx, msgs...)
}

func (w *kafkaWriterWrapper) Close() error {
	return w.Writer.Close()
}

// SendEvent - сериализует событие и отправляет его с ключом-категорией.
// Временем сообщения выступает анонимизированная метка, а не момент отправки.
func (p *Producer) SendEvent(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Type, err)
	}

	err = p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Category),
		Value: value,
		Time:  event.AnonymizedTimestamp,
	})

	if err != nil {
		p.Logger.Errorf("Failed to publish %s event: %v", event.Type, err)
		return err
	}

	return nil
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
