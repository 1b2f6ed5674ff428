package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"

	"github.com/tumbleweedd/order_pipeline/pkg/brokers"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const dialKey = "dial"

// Connection owns the process-wide sarama client and the sync producer built on
// top of it. A missing or closed client is re-dialed with exponential backoff;
// concurrent callers share a single dial.
type Connection struct {
	log      logger.Logger
	addrs    []string
	cfg      *sarama.Config
	minDelay time.Duration
	maxDelay time.Duration

	dial        func(addrs []string, cfg *sarama.Config) (sarama.Client, error)
	newProducer func(client sarama.Client) (sarama.SyncProducer, error)

	ctx    context.Context
	cancel context.CancelFunc
	dials  singleflight.Group

	mu       sync.RWMutex
	client   sarama.Client
	producer sarama.SyncProducer
	closed   bool
}

func NewConnection(log logger.Logger, addrs []string, maxDelay time.Duration) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		log:         log,
		addrs:       addrs,
		cfg:         newSaramaConfig(),
		minDelay:    backoff.DefaultInitialInterval,
		maxDelay:    maxDelay,
		dial:        sarama.NewClient,
		newProducer: sarama.NewSyncProducerFromClient,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func newSaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Compression = sarama.CompressionNone
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Offsets.AutoCommit.Enable = true
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return cfg
}

// Acquire returns a live client, dialing if needed. It blocks until a client is
// available, ctx is done or the connection is closed.
func (c *Connection) Acquire(ctx context.Context) (sarama.Client, error) {
	client, _, err := c.current(ctx)

	return client, err
}

func (c *Connection) Producer(ctx context.Context) (sarama.SyncProducer, error) {
	_, producer, err := c.current(ctx)

	return producer, err
}

func (c *Connection) current(ctx context.Context) (sarama.Client, sarama.SyncProducer, error) {
	const op = "brokers.kafka.Connection.current"

	for {
		c.mu.RLock()
		client, producer, closed := c.client, c.producer, c.closed
		c.mu.RUnlock()

		if closed {
			return nil, nil, fmt.Errorf("%s: %w", op, brokers.ErrClosed)
		}
		if client != nil && !client.Closed() {
			return client, producer, nil
		}

		ch := c.dials.DoChan(dialKey, func() (any, error) {
			return nil, c.redial()
		})

		select {
		case res := <-ch:
			if res.Err != nil {
				return nil, nil, fmt.Errorf("%s: %w", op, res.Err)
			}
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("%s: %w", op, ctx.Err())
		}
	}
}

func (c *Connection) redial() error {
	const op = "brokers.kafka.Connection.redial"

	c.mu.RLock()
	live := c.client != nil && !c.client.Closed()
	c.mu.RUnlock()
	if live {
		return nil
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.minDelay
	exp.MaxInterval = c.maxDelay
	exp.MaxElapsedTime = 0

	var (
		client   sarama.Client
		producer sarama.SyncProducer
	)

	err := backoff.RetryNotify(
		func() error {
			cl, err := c.dial(c.addrs, c.cfg)
			if err != nil {
				return err
			}

			p, err := c.newProducer(cl)
			if err != nil {
				_ = cl.Close()
				return err
			}

			client, producer = cl, p

			return nil
		},
		backoff.WithContext(exp, c.ctx),
		func(err error, next time.Duration) {
			c.log.Warn(op, logger.String("retry_in", next.String()), logger.Err(err))
		},
	)
	if err != nil {
		if c.ctx.Err() != nil {
			return brokers.ErrClosed
		}
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		_ = producer.Close()
		_ = client.Close()
		return brokers.ErrClosed
	}
	oldClient, oldProducer := c.client, c.producer
	c.client, c.producer = client, producer
	c.mu.Unlock()

	closeSession(oldClient, oldProducer)

	c.log.Info(op, logger.String("message", "connected to kafka"))

	return nil
}

// InvalidateProducer drops the session owning p so the next caller re-dials.
func (c *Connection) InvalidateProducer(p sarama.SyncProducer) {
	c.mu.Lock()
	if c.producer != p {
		c.mu.Unlock()
		return
	}
	client, producer := c.client, c.producer
	c.client, c.producer = nil, nil
	c.mu.Unlock()

	closeSession(client, producer)
}

// InvalidateClient drops the session owning client so the next caller re-dials.
func (c *Connection) InvalidateClient(client sarama.Client) {
	c.mu.Lock()
	if c.client != client {
		c.mu.Unlock()
		return
	}
	producer := c.producer
	c.client, c.producer = nil, nil
	c.mu.Unlock()

	closeSession(client, producer)
}

// Healthy reports whether the brokers answer a metadata request.
func (c *Connection) Healthy(ctx context.Context) error {
	const op = "brokers.kafka.Connection.Healthy"

	client, err := c.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- client.RefreshMetadata()
	}()

	select {
	case err = <-done:
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

func (c *Connection) Close() error {
	c.cancel()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	client, producer := c.client, c.producer
	c.client, c.producer = nil, nil
	c.mu.Unlock()

	return closeSession(client, producer)
}

func closeSession(client sarama.Client, producer sarama.SyncProducer) error {
	var errs []error

	if producer != nil {
		errs = append(errs, producer.Close())
	}
	if client != nil && !client.Closed() {
		errs = append(errs, client.Close())
	}

	return errors.Join(errs...)
}

func isConnectionError(err error) bool {
	return errors.Is(err, sarama.ErrOutOfBrokers) ||
		errors.Is(err, sarama.ErrClosedClient) ||
		errors.Is(err, sarama.ErrNotConnected)
}
