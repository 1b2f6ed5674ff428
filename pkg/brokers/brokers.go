package brokers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const deadLetterSuffix = ".dlq"

var (
	ErrClosed = errors.New("bus closed")
	// ErrBusUnavailable means the broker could not take the message.
	ErrBusUnavailable = errors.New("event bus unavailable")
)

type Message struct {
	Topic     string
	Key       string
	Value     []byte
	Partition int32
	Offset    int64
}

// Handler must be idempotent: a message may be handed to it more than once.
type Handler func(ctx context.Context, msg Message) error

//go:generate mockgen -source=brokers.go -destination=mocks/mock_brokers.go -package=mocks

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

type RetryPolicy struct {
	MaxAttempts int
	Initial     time.Duration
	Max         time.Duration
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 5
	}
	if p.Initial <= 0 {
		p.Initial = 200 * time.Millisecond
	}
	if p.Max <= 0 {
		p.Max = 5 * time.Second
	}

	return p
}

// Permanent marks a handler error that retrying cannot fix. The message goes
// to the dead-letter topic without further attempts.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func DeadLetterTopic(topic string) string {
	return topic + deadLetterSuffix
}

// Deliverer runs a handler against one message with bounded retries. A message
// whose attempts are exhausted is moved to the dead-letter topic. Deliver
// returning nil means the message may be acknowledged.
type Deliverer struct {
	log        logger.Logger
	policy     RetryPolicy
	deadLetter Publisher

	// OnDeadLetter, when set, is called after a message reached the dead-letter topic.
	OnDeadLetter func(ctx context.Context, msg Message, cause error)
}

func NewDeliverer(log logger.Logger, policy RetryPolicy, deadLetter Publisher) *Deliverer {
	return &Deliverer{
		log:        log,
		policy:     policy.withDefaults(),
		deadLetter: deadLetter,
	}
}

func (d *Deliverer) Deliver(ctx context.Context, msg Message, handler Handler) error {
	const op = "brokers.Deliverer.Deliver"

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = d.policy.Initial
	exp.MaxInterval = d.policy.Max
	exp.MaxElapsedTime = 0

	policy := backoff.WithMaxRetries(backoff.WithContext(exp, ctx), uint64(d.policy.MaxAttempts-1))

	attempt := 0
	handlerErr := backoff.RetryNotify(
		func() error {
			attempt++
			return handler(ctx, msg)
		},
		policy,
		func(err error, next time.Duration) {
			d.log.WarnContext(ctx, op,
				logger.String("topic", msg.Topic),
				logger.String("key", msg.Key),
				logger.Int("attempt", attempt),
				logger.String("retry_in", next.String()),
				logger.Err(err),
			)
		},
	)
	if handlerErr == nil {
		return nil
	}

	// Shutdown while retrying: leave the message for redelivery.
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}

	dlqTopic := DeadLetterTopic(msg.Topic)
	if err := d.deadLetter.Publish(ctx, dlqTopic, msg.Key, msg.Value); err != nil {
		d.log.ErrorContext(ctx, op, logger.String("dead_letter_topic", dlqTopic), logger.Err(err))
		return fmt.Errorf("%s: dead-letter publish: %w", op, errors.Join(handlerErr, err))
	}

	d.log.ErrorContext(ctx, op,
		logger.String("message", "moved to dead-letter topic"),
		logger.String("dead_letter_topic", dlqTopic),
		logger.String("key", msg.Key),
		logger.Int("attempts", attempt),
		logger.Err(handlerErr),
	)

	if d.OnDeadLetter != nil {
		d.OnDeadLetter(ctx, msg, handlerErr)
	}

	return nil
}
