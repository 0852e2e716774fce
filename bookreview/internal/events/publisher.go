package events

import (
	"encoding/json"
	"time"

	"github.com/Astemirdum/bookreview-service/pkg/circuit_breaker"
	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(event kafka.BookEvent)
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
	now      func() time.Time
}

// NewPublisher sends events synchronously. Failures are logged and dropped;
// a broken broker trips the breaker so requests stop waiting on it.
func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	return &publisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(20, 30*time.Second, 0.5, 3),
		log:      log.Named("events"),
		now:      time.Now,
	}
}

func (p *publisher) Publish(event kafka.BookEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.BookID),
		Value: sarama.ByteEncoder(data),
	}
	err = p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		p.log.Warn("publish event", zap.String("type", string(event.Type)), zap.String("bookId", event.BookID), zap.Error(err))
	}
}

type nopPublisher struct{}

// NewNopPublisher is used when no brokers are configured.
func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(kafka.BookEvent) {}
