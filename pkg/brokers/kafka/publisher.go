package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/tumbleweedd/order_pipeline/pkg/brokers"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type producerSource interface {
	Producer(ctx context.Context) (sarama.SyncProducer, error)
	InvalidateProducer(p sarama.SyncProducer)
}

type Publisher struct {
	log  logger.Logger
	conn producerSource
}

func NewPublisher(log logger.Logger, conn producerSource) *Publisher {
	return &Publisher{
		log:  log,
		conn: conn,
	}
}

// Publish sends one message and waits for the broker acknowledgement or ctx.
func (p *Publisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	const op = "brokers.kafka.Publisher.Publish"

	producer, err := p.conn.Producer(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, brokers.ErrBusUnavailable, err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	done := make(chan error, 1)
	go func() {
		_, _, sendErr := producer.SendMessage(message)
		done <- sendErr
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		return fmt.Errorf("%s: %w: %w", op, brokers.ErrBusUnavailable, ctx.Err())
	}

	if err != nil {
		if isConnectionError(err) {
			p.conn.InvalidateProducer(producer)
		}
		return fmt.Errorf("%s: %w: %w", op, brokers.ErrBusUnavailable, err)
	}

	p.log.DebugContext(ctx, op, logger.String("topic", topic), logger.String("key", key))

	return nil
}
