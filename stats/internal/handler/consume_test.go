package handler

import (
	"context"
	"testing"

	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "m" }
func (s *fakeSession) GenerationID() int32                      { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context                 { return s.ctx }
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string                            { return kafka.BookEventsTopic }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumer_ConsumeClaim(t *testing.T) {
	var saved []kafka.BookEvent
	save := func(_ context.Context, event kafka.BookEvent) error {
		if event.BookID == "broken" {
			return errors.New("db down")
		}
		saved = append(saved, event)
		return nil
	}

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 1, Value: []byte(`{"id":"e1","type":"REVIEW_ADDED","bookId":"b1","rating":4,"reviews":1}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Value: []byte(`not json`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 3, Value: []byte(`{"id":"e2","type":"BOOK_UPDATED","bookId":"broken"}`)}
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	c := NewConsumer(save, zap.NewNop())
	require.NoError(t, c.Setup(session))
	require.NoError(t, c.ConsumeClaim(session, claim))
	require.NoError(t, c.Cleanup(session))

	require.Len(t, saved, 1)
	require.Equal(t, kafka.EventReviewAdded, saved[0].Type)
	require.Equal(t, 4.0, saved[0].Rating)
	// the failed save stays unmarked
	require.Equal(t, []int64{1, 2}, session.marked)
}
