package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	BookEventsTopic    = "bookreview.events"
	StatsConsumerGroup = "stats"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"bookreview.events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventType string

const (
	EventBookCreated EventType = "BOOK_CREATED"
	EventBookUpdated EventType = "BOOK_UPDATED"
	EventBookDeleted EventType = "BOOK_DELETED"
	EventReviewAdded EventType = "REVIEW_ADDED"
)

// BookEvent is published by the book service after every successful mutation.
type BookEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	BookID    string    `json:"bookId"`
	Title     string    `json:"title,omitempty"`
	Rating    float64   `json:"rating,omitempty"`
	Reviews   int       `json:"reviews"`
	Timestamp time.Time `json:"timestamp"`
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// CreateTopics creates the topic if it is missing.
func CreateTopics(cfg Config, topics ...string) error {
	admin, err := sarama.NewClusterAdmin(cfg.Addrs, sarama.NewConfig())
	if err != nil {
		return err
	}
	defer admin.Close()

	for _, topic := range topics {
		err = admin.CreateTopic(topic, &sarama.TopicDetail{NumPartitions: 1, ReplicationFactor: 1}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return err
		}
	}
	return nil
}

// Consume blocks until ctx is done, rejoining the group after every rebalance.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) error {
	for {
		if err := consumer.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			log.Error("consumer.Consume", zap.Error(err))
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
