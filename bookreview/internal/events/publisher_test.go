package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/bookreview-service/pkg/circuit_breaker"
	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev kafka.BookEvent
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		if ev.ID == "" {
			return errors.New("empty event id")
		}
		if ev.Type != kafka.EventReviewAdded || ev.BookID != "b1" || ev.Reviews != 3 || !ev.Timestamp.Equal(ts) {
			return errors.New("unexpected event")
		}
		return nil
	})

	p := NewPublisher(producer, kafka.BookEventsTopic, zap.NewNop()).(*publisher)
	p.now = func() time.Time { return ts }
	p.Publish(kafka.BookEvent{Type: kafka.EventReviewAdded, BookID: "b1", Reviews: 3, Rating: 4})

	require.NoError(t, producer.Close())
}

func TestPublisher_BrokerDown(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisher(producer, kafka.BookEventsTopic, zap.NewNop()).(*publisher)
	p.cb = circuit_breaker.New(2, time.Minute, 0.5, 1)

	// the first failure opens the breaker, so only one message reaches the producer
	p.Publish(kafka.BookEvent{Type: kafka.EventBookDeleted, BookID: "b1"})
	p.Publish(kafka.BookEvent{Type: kafka.EventBookDeleted, BookID: "b1"})
	require.Equal(t, circuit_breaker.Open, p.cb.State())

	producer.ExpectSendMessageAndSucceed()
	p.cb.Reset()
	p.Publish(kafka.BookEvent{Type: kafka.EventBookDeleted, BookID: "b1"})
	require.NoError(t, producer.Close())
}

func TestNopPublisher(t *testing.T) {
	require.NotPanics(t, func() {
		NewNopPublisher().Publish(kafka.BookEvent{Type: kafka.EventBookCreated})
	})
}
