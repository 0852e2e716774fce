package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type saveEvent func(ctx context.Context, event kafka.BookEvent) error

type Consumer struct {
	save saveEvent
	log  *zap.Logger
}

func NewConsumer(save saveEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		save: save,
		log:  log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks undecodable messages so they are skipped. A failed
// save leaves the offset in place and the message is redelivered after the
// next rebalance.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.BookEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.save(session.Context(), event); err != nil {
				consumer.log.Error("consumer.save", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:",
				zap.String("value", string(message.Value)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
