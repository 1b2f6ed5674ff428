package brokers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type recordingPublisher struct {
	mu       sync.Mutex
	err      error
	messages []Message
}

func (p *recordingPublisher) Publish(_ context.Context, topic, key string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}

	p.messages = append(p.messages, Message{Topic: topic, Key: key, Value: payload})

	return nil
}

func testPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Initial: time.Millisecond, Max: 2 * time.Millisecond}
}

func TestDeliverSucceedsAfterRetry(t *testing.T) {
	dlq := &recordingPublisher{}
	d := NewDeliverer(logger.NewDiscard(), testPolicy(), dlq)

	calls := 0
	err := d.Deliver(context.Background(), Message{Topic: "order_created", Key: "k"}, func(context.Context, Message) error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Empty(t, dlq.messages)
}

func TestDeliverMovesToDeadLetterAfterMaxAttempts(t *testing.T) {
	dlq := &recordingPublisher{}
	d := NewDeliverer(logger.NewDiscard(), testPolicy(), dlq)

	var deadLettered []Message
	d.OnDeadLetter = func(_ context.Context, msg Message, _ error) {
		deadLettered = append(deadLettered, msg)
	}

	calls := 0
	err := d.Deliver(context.Background(), Message{Topic: "order_created", Key: "k", Value: []byte("v")}, func(context.Context, Message) error {
		calls++
		return errors.New("poison")
	})

	require.NoError(t, err)
	require.Equal(t, 3, calls)
	require.Len(t, dlq.messages, 1)
	require.Equal(t, "order_created.dlq", dlq.messages[0].Topic)
	require.Equal(t, []byte("v"), dlq.messages[0].Value)
	require.Len(t, deadLettered, 1)
}

func TestDeliverKeepsMessageWhenDeadLetterFails(t *testing.T) {
	dlq := &recordingPublisher{err: errors.New("broker down")}
	d := NewDeliverer(logger.NewDiscard(), testPolicy(), dlq)

	err := d.Deliver(context.Background(), Message{Topic: "order_created"}, func(context.Context, Message) error {
		return errors.New("poison")
	})

	require.Error(t, err)
}

func TestDeliverStopsOnCancelledContext(t *testing.T) {
	dlq := &recordingPublisher{}
	d := NewDeliverer(logger.NewDiscard(), RetryPolicy{MaxAttempts: 10, Initial: time.Hour, Max: time.Hour}, dlq)

	ctx, cancel := context.WithCancel(context.Background())

	err := d.Deliver(ctx, Message{Topic: "order_created"}, func(context.Context, Message) error {
		cancel()
		return errors.New("transient")
	})

	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, dlq.messages)
}

func TestDeliverSkipsRetriesForPermanentError(t *testing.T) {
	dlq := &recordingPublisher{}
	d := NewDeliverer(logger.NewDiscard(), testPolicy(), dlq)

	calls := 0
	err := d.Deliver(context.Background(), Message{Topic: "order_created", Key: "k"}, func(context.Context, Message) error {
		calls++
		return Permanent(errors.New("undecodable"))
	})

	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Len(t, dlq.messages, 1)
	require.Equal(t, "order_created.dlq", dlq.messages[0].Topic)
}
