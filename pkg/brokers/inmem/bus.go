package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tumbleweedd/order_pipeline/pkg/brokers"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const defaultRedeliveryDelay = 50 * time.Millisecond

type topicLog struct {
	messages []brokers.Message
	notify   chan struct{}
}

// Bus is an in-process broker. Every subscriber reads the whole topic log and
// advances past a message only once the deliverer accepted it, so a failed
// message is redelivered like an unmarked Kafka offset.
type Bus struct {
	log       logger.Logger
	deliverer *brokers.Deliverer

	redeliveryDelay time.Duration

	mu     sync.Mutex
	topics map[string]*topicLog
	closed bool
	done   chan struct{}
}

func NewBus(log logger.Logger, policy brokers.RetryPolicy) *Bus {
	b := &Bus{
		log:             log,
		redeliveryDelay: defaultRedeliveryDelay,
		topics:          make(map[string]*topicLog),
		done:            make(chan struct{}),
	}
	b.deliverer = brokers.NewDeliverer(log, policy, b)

	return b
}

func (b *Bus) OnDeadLetter(fn func(ctx context.Context, msg brokers.Message, cause error)) {
	b.deliverer.OnDeadLetter = fn
}

func (b *Bus) Publish(ctx context.Context, topic, key string, payload []byte) error {
	const op = "brokers.inmem.Bus.Publish"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return fmt.Errorf("%s: %w", op, brokers.ErrClosed)
	}

	t := b.topicLocked(topic)
	value := make([]byte, len(payload))
	copy(value, payload)

	t.messages = append(t.messages, brokers.Message{
		Topic:  topic,
		Key:    key,
		Value:  value,
		Offset: int64(len(t.messages)),
	})

	close(t.notify)
	t.notify = make(chan struct{})

	return nil
}

// Subscribe blocks until ctx is done or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler brokers.Handler) error {
	const op = "brokers.inmem.Bus.Subscribe"

	var offset int

	for {
		msg, wait, ok := b.next(topic, offset)
		if !ok {
			select {
			case <-ctx.Done():
				return nil
			case <-b.done:
				return nil
			case <-wait:
				continue
			}
		}

		if err := b.deliverer.Deliver(ctx, msg, handler); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			b.log.WarnContext(ctx, op,
				logger.String("topic", topic),
				logger.Int("offset", offset),
				logger.String("message", "redelivering"),
				logger.Err(err),
			)

			select {
			case <-ctx.Done():
				return nil
			case <-b.done:
				return nil
			case <-time.After(b.redeliveryDelay):
				continue
			}
		}

		offset++
	}
}

func (b *Bus) next(topic string, offset int) (brokers.Message, <-chan struct{}, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.topicLocked(topic)
	if offset < len(t.messages) {
		return t.messages[offset], nil, true
	}

	return brokers.Message{}, t.notify, false
}

// Messages returns a snapshot of everything published to topic.
func (b *Bus) Messages(topic string) []brokers.Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.topics[topic]
	if !ok {
		return nil
	}

	out := make([]brokers.Message, len(t.messages))
	copy(out, t.messages)

	return out
}

func (b *Bus) Healthy(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return brokers.ErrClosed
	}

	return nil
}

func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.done)
	}

	return nil
}

func (b *Bus) topicLocked(name string) *topicLog {
	t, ok := b.topics[name]
	if !ok {
		t = &topicLog{notify: make(chan struct{})}
		b.topics[name] = t
	}

	return t
}
