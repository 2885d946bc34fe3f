package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"ordertracker/internal/pkg/config"
	"ordertracker/pkg/logger"
)

const defaultProducerRetryMax = 3

func NewSaramaProducerConfig(versionStr string, retryMax int) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	if retryMax <= 0 {
		retryMax = defaultProducerRetryMax
	}

	// SyncProducer требует оба флага
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = retryMax
	cfg.Producer.Idempotent = false
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	return cfg, nil
}

func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := NewSaramaProducerConfig(cfg.Sarama.Version, cfg.Sarama.ProducerRetryMax)
	if err != nil {
		return nil, fmt.Errorf("build sarama producer config: %w", err)
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	kafkaLog.Info("Kafka producer ready")
	return producer, nil
}
