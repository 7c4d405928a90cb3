package delivery_events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"parcel-service/internal/entities"
)

type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishDeliveryRecorded ключ сообщения - номер отслеживания, события одной посылки идут в одну партицию.
func (p *Publisher) PublishDeliveryRecorded(ctx context.Context, record entities.DeliveryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(toEvent(record))
	if err != nil {
		return fmt.Errorf("marshal delivery event: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(record.TrackingNumber),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event"), Value: []byte(EventDeliveryRecorded)},
		},
	})
	if err != nil {
		// Метрики Prometheus
		EventsPublishedTotal.WithLabelValues(EventDeliveryRecorded, "error").Inc()
		return fmt.Errorf("send delivery event: %w", err)
	}

	EventsPublishedTotal.WithLabelValues(EventDeliveryRecorded, "ok").Inc()
	return nil
}

// NoopPublisher используется, когда kafka не настроена.
type NoopPublisher struct{}

func (NoopPublisher) PublishDeliveryRecorded(context.Context, entities.DeliveryRecord) error {
	return nil
}
