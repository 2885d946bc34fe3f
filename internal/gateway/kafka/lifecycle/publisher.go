package lifecycle

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"ordertracker/internal/entities"
)

const eventIDHeader = "event_id"

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishLifecycle ключует сообщение по id заказа: переходы одного заказа
// попадают в одну партицию и читаются по порядку.
func (p *Publisher) PublishLifecycle(ctx context.Context, event entities.LifecycleEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(fromDomain(event))
	if err != nil {
		return fmt.Errorf("marshal lifecycle event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(eventIDHeader), Value: []byte(event.EventID)},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		PublishedTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("send lifecycle event %s: %w", event.EventID, err)
	}

	PublishedTotal.WithLabelValues("ok").Inc()
	return nil
}

// Noop используется, когда Kafka выключена в конфигурации.
type Noop struct{}

func (Noop) PublishLifecycle(context.Context, entities.LifecycleEvent) error {
	return nil
}
