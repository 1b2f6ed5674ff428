package ordercreated

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/pkg/brokers"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type orderCreatedObserver interface {
	OnOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error
}

type subscriber interface {
	Subscribe(ctx context.Context, topic string, handler brokers.Handler) error
}

// Consumer feeds order_created messages from the bus into the payment side.
type Consumer struct {
	log      logger.Logger
	topic    string
	observer orderCreatedObserver
	bus      subscriber
}

func NewConsumer(log logger.Logger, topic string, bus subscriber, observer orderCreatedObserver) *Consumer {
	return &Consumer{
		log:      log,
		topic:    topic,
		observer: observer,
		bus:      bus,
	}
}

// Run blocks until ctx is cancelled or the subscription fails.
func (c *Consumer) Run(ctx context.Context) error {
	const op = "delivery.broker.ordercreated.Run"

	c.log.InfoContext(ctx, op, logger.String("topic", c.topic), logger.String("message", "consumer started"))

	if err := c.bus.Subscribe(ctx, c.topic, c.Handle); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.log.InfoContext(ctx, op, logger.String("topic", c.topic), logger.String("message", "consumer stopped"))

	return nil
}

func (c *Consumer) Handle(ctx context.Context, msg brokers.Message) error {
	const op = "delivery.broker.ordercreated.Handle"

	var event models.OrderCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return brokers.Permanent(fmt.Errorf("%s: %w: decode event: %w", op, internalErrors.ErrValidation, err))
	}

	if err := c.observer.OnOrderCreated(ctx, event); err != nil {
		if errors.Is(err, internalErrors.ErrValidation) {
			return brokers.Permanent(fmt.Errorf("%s: %w", op, err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
