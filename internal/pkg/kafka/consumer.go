package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"ordertracker/internal/pkg/config"
	"ordertracker/pkg/logger"
	"ordertracker/pkg/retrier"
	"ordertracker/pkg/retrier/backoff_adapter"
)

const pingInitialInterval = time.Second

// Consumer читает журнал переходов заказов через consumer group.
type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler

	errorsDone sync.WaitGroup
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{rebalanceStrategy}
	// ошибки фоновых fetch/commit иначе только в sarama.Logger
	cfg.Consumer.Return.Errors = true

	return cfg, nil
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers := cfg.BrokerList()
	groupID := cfg.ConsumerGroup
	topics := []string{cfg.Topic}

	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", groupID),
		logger.NewField("topics", topics),
	)

	// группу создаем после ping: sarama.NewConsumerGroup сам ходит в брокеры
	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, groupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return newConsumer(kafkaLog, client, topics, handler), nil
}

func newConsumer(log logger.Logger, client sarama.ConsumerGroup, topics []string, handler sarama.ConsumerGroupHandler) *Consumer {
	c := &Consumer{
		log:     log,
		client:  client,
		topics:  topics,
		handler: handler,
	}

	c.errorsDone.Add(1)
	go func() {
		defer c.errorsDone.Done()
		for err := range client.Errors() {
			c.log.Warn("consumer group error", logger.NewField("error", err))
		}
	}()

	return c
}

// Start блокируется, пока не отменят ctx или consumer group не вернет ошибку.
// Consume возвращается на каждом ребалансе, поэтому вызывается в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		if err != nil {
			c.log.With(
				logger.NewField("error", err),
			).Error("Error from consumer")
			return fmt.Errorf("consumer error: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("Context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

// Close закрывает группу и дожидается логгера ошибок.
func (c *Consumer) Close() error {
	err := c.client.Close()
	c.errorsDone.Wait()
	return err
}

func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retryConfig := retrier.Startup(pingInitialInterval)
	retryConfig.OnRetry = func(err error, next time.Duration) {
		log.Warn("kafka is not ready yet",
			logger.NewField("error", err),
			logger.NewField("next_attempt_in", next),
		)
	}

	var attempt uint64
	err := backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(context.Context) error {
		attempt++

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			err := client.Close()
			if err != nil {
				log.Error("failed to close Kafka connection",
					logger.NewField("error", err),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Kafka connection failed after retries")
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Kafka connection established")
	return nil
}
