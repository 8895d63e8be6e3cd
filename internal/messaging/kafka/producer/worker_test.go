package producer

import (
	"context"
	"errors"
	"testing"

	"go-offboarding/internal/events"
	"go-offboarding/internal/messaging/kafka"
	kafkaMock "go-offboarding/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type recordingWriter struct {
	messages []kafkago.Message
	failFor  map[string]error
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err := w.failFor[string(m.Key)]; err != nil {
			return err
		}
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func pendingEvent(id, aggregateID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		RequestID:     "rid-" + id,
		AggregateType: "exit_request",
		AggregateID:   aggregateID,
		EventType:     events.EventExitStatusChanged,
		Topic:         events.ExitLifecycleTopic,
		Payload:       []byte(`{"event_type":"exit_status_changed"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{
			pendingEvent("o1", "exit-1"),
			pendingEvent("o2", "exit-1"),
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o1").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o2").Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 2, sent)
		if assert.Len(t, writer.messages, 2) {
			msg := writer.messages[0]
			assert.Equal(t, events.ExitLifecycleTopic, msg.Topic)
			assert.Equal(t, "exit-1", string(msg.Key))
			assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("rid-o1")})
			assert.Contains(t, msg.Headers, kafkago.Header{Key: "event_type", Value: []byte(events.EventExitStatusChanged)})
		}
	})

	t.Run("publish failure is marked for retry and the batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{failFor: map[string]error{"exit-1": errors.New("broker unavailable")}}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{
			pendingEvent("o1", "exit-1"),
			pendingEvent("o2", "exit-2"),
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "o1", "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o2").Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("malformed rows are not published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{}

		bad := pendingEvent("o1", "exit-1")
		bad.Payload = nil
		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{bad}, nil)
		repo.EXPECT().MarkFailed(ctx, "o1", "outbox payload is required").Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Zero(t, sent)
		assert.Empty(t, writer.messages)
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

		_, err := processPendingEvents(ctx, repo, &recordingWriter{}, zap.NewNop())
		assert.EqualError(t, err, "db down")
	})
}
