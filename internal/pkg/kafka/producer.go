package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"parcel-service/internal/pkg/config"
	"parcel-service/pkg/logger"
	retrierconfig "parcel-service/pkg/retrier"
	"parcel-service/pkg/retrier/backoff_adapter"
)

const (
	producerRetryMax = 3
	connectRetries   = 5
)

func NewSaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()

	// обязательно для SyncProducer
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = producerRetryMax

	return cfg
}

// NewSyncProducer при пустом списке брокеров возвращает nil без ошибки: публикация событий выключена.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	brokers := cfg.BrokerList()
	if len(brokers) == 0 {
		log.Info("kafka brokers are not set, delivery events disabled")
		return nil, nil
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	saramaConfig := NewSaramaConfig()

	retryConfig := retrierconfig.ConnectConfig()
	retryConfig.MaxRetries = connectRetries
	retrier := backoff_adapter.New(retryConfig)

	var (
		producer sarama.SyncProducer
		attempt  uint64
	)
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		kafkaLog.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Kafka connection")

		var err error
		producer, err = sarama.NewSyncProducer(brokers, saramaConfig)
		return err
	})
	if err != nil {
		kafkaLog.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Kafka connection failed after retries")
		return nil, fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	kafkaLog.With(
		logger.NewField("attempts", attempt),
	).Info("Kafka connection established")
	return producer, nil
}
