package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/tumbleweedd/order_pipeline/pkg/brokers"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const defaultRestartDelay = time.Second

type clientSource interface {
	Acquire(ctx context.Context) (sarama.Client, error)
	InvalidateClient(client sarama.Client)
}

// Subscriber consumes a topic as a member of a consumer group. Offsets are
// marked only after the deliverer accepted the message.
type Subscriber struct {
	log       logger.Logger
	conn      clientSource
	groupID   string
	deliverer *brokers.Deliverer

	restartDelay time.Duration
	newGroup     func(groupID string, client sarama.Client) (sarama.ConsumerGroup, error)
}

func NewSubscriber(log logger.Logger, conn clientSource, groupID string, deliverer *brokers.Deliverer) *Subscriber {
	return &Subscriber{
		log:          log,
		conn:         conn,
		groupID:      groupID,
		deliverer:    deliverer,
		restartDelay: defaultRestartDelay,
		newGroup:     sarama.NewConsumerGroupFromClient,
	}
}

// Subscribe blocks until ctx is done. Broken sessions are restarted.
func (s *Subscriber) Subscribe(ctx context.Context, topic string, handler brokers.Handler) error {
	const op = "brokers.kafka.Subscriber.Subscribe"

	for {
		err := s.run(ctx, topic, handler)
		if ctx.Err() != nil {
			return nil
		}

		s.log.WarnContext(ctx, op,
			logger.String("topic", topic),
			logger.String("message", "consumer session ended, restarting"),
			logger.Err(err),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.restartDelay):
		}
	}
}

func (s *Subscriber) run(ctx context.Context, topic string, handler brokers.Handler) error {
	const op = "brokers.kafka.Subscriber.run"

	client, err := s.conn.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	group, err := s.newGroup(s.groupID, client)
	if err != nil {
		if isConnectionError(err) {
			s.conn.InvalidateClient(client)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if closeErr := group.Close(); closeErr != nil {
			s.log.Warn(op, logger.Err(closeErr))
		}
	}()

	claims := &claimHandler{
		log:       s.log,
		deliverer: s.deliverer,
		handler:   handler,
	}

	for {
		// Consume returns at every rebalance and whenever a claim gives up.
		if err = group.Consume(ctx, []string{topic}, claims); err != nil {
			if isConnectionError(err) {
				s.conn.InvalidateClient(client)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

type claimHandler struct {
	log       logger.Logger
	deliverer *brokers.Deliverer
	handler   brokers.Handler
}

func (h *claimHandler) Setup(sarama.ConsumerGroupSession) error { return nil }

func (h *claimHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim returning an error ends the session; unmarked messages are
// redelivered once the group rejoins.
func (h *claimHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	const op = "brokers.kafka.claimHandler.ConsumeClaim"

	ctx := session.Context()

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			err := h.deliverer.Deliver(ctx, toMessage(msg), h.handler)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				h.log.ErrorContext(ctx, op,
					logger.String("topic", msg.Topic),
					logger.Int("partition", int(msg.Partition)),
					logger.Err(err),
				)
				return fmt.Errorf("%s: %w", op, err)
			}

			session.MarkMessage(msg, "")
		case <-ctx.Done():
			return nil
		}
	}
}

func toMessage(msg *sarama.ConsumerMessage) brokers.Message {
	return brokers.Message{
		Topic:     msg.Topic,
		Key:       string(msg.Key),
		Value:     msg.Value,
		Partition: msg.Partition,
		Offset:    msg.Offset,
	}
}
