package kafka

import (
	"context"
	"time"

	"github.com/tumbleweedd/order_pipeline/pkg/brokers"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type Config struct {
	Brokers           []string
	GroupID           string
	ReconnectMaxDelay time.Duration
	Retry             brokers.RetryPolicy
}

// Bus bundles one connection with the publisher and subscriber built on it.
// Dead letters are written through the same publisher.
type Bus struct {
	*Publisher

	conn       *Connection
	deliverer  *brokers.Deliverer
	subscriber *Subscriber
}

func NewBus(log logger.Logger, cfg Config) *Bus {
	conn := NewConnection(log, cfg.Brokers, cfg.ReconnectMaxDelay)
	publisher := NewPublisher(log, conn)
	deliverer := brokers.NewDeliverer(log, cfg.Retry, publisher)

	return &Bus{
		Publisher:  publisher,
		conn:       conn,
		deliverer:  deliverer,
		subscriber: NewSubscriber(log, conn, cfg.GroupID, deliverer),
	}
}

func (b *Bus) OnDeadLetter(fn func(ctx context.Context, msg brokers.Message, cause error)) {
	b.deliverer.OnDeadLetter = fn
}

func (b *Bus) Subscribe(ctx context.Context, topic string, handler brokers.Handler) error {
	return b.subscriber.Subscribe(ctx, topic, handler)
}

func (b *Bus) Healthy(ctx context.Context) error {
	return b.conn.Healthy(ctx)
}

func (b *Bus) Close() error {
	return b.conn.Close()
}
