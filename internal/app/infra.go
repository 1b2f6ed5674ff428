package app

import (
	"context"
	"fmt"

	"github.com/tumbleweedd/order_pipeline/internal/config"
	httpdelivery "github.com/tumbleweedd/order_pipeline/internal/delivery/http"
	"github.com/tumbleweedd/order_pipeline/internal/metrics"
	"github.com/tumbleweedd/order_pipeline/internal/repository"
	"github.com/tumbleweedd/order_pipeline/internal/repository/memory"
	orderRepository "github.com/tumbleweedd/order_pipeline/internal/repository/order"
	paymentRepository "github.com/tumbleweedd/order_pipeline/internal/repository/payment"
	"github.com/tumbleweedd/order_pipeline/pkg/brokers"
	"github.com/tumbleweedd/order_pipeline/pkg/brokers/inmem"
	"github.com/tumbleweedd/order_pipeline/pkg/brokers/kafka"
	"github.com/tumbleweedd/order_pipeline/pkg/databases/postgres"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type EventBus interface {
	brokers.Publisher
	Subscribe(ctx context.Context, topic string, handler brokers.Handler) error
	OnDeadLetter(fn func(ctx context.Context, msg brokers.Message, cause error))
	Healthy(ctx context.Context) error
	Close() error
}

var (
	_ EventBus = (*kafka.Bus)(nil)
	_ EventBus = (*inmem.Bus)(nil)
)

// NewBus connects to Kafka, or returns an in-process bus when no brokers are
// configured. Dead letters are counted in m.
func NewBus(log logger.Logger, cfg config.KafkaConfig, m *metrics.Metrics) EventBus {
	const op = "app.NewBus"

	policy := brokers.RetryPolicy{
		MaxAttempts: cfg.MaxAttempts,
		Initial:     cfg.RetryInitial,
		Max:         cfg.RetryMax,
	}

	var bus EventBus
	if len(cfg.BrokerList) == 0 {
		log.Warn(op, logger.String("message", "no kafka brokers configured, events stay in this process"))
		bus = inmem.NewBus(log, policy)
	} else {
		bus = kafka.NewBus(log, kafka.Config{
			Brokers:           cfg.BrokerList,
			GroupID:           cfg.ConsumerGroup,
			ReconnectMaxDelay: cfg.ReconnectMaxDelay,
			Retry:             policy,
		})
	}

	bus.OnDeadLetter(func(ctx context.Context, msg brokers.Message, _ error) {
		m.RecordDeadLetter(ctx, msg.Topic)
	})

	return bus
}

// openDatabase connects to Postgres and applies migrations when configured to.
func openDatabase(ctx context.Context, log logger.Logger, cfg config.PostgresConfig) (*postgres.PgDB, error) {
	const op = "app.openDatabase"

	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DSN(), cfg.MigrationsPath); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Info(op, logger.String("migrations", cfg.MigrationsPath), logger.String("message", "migrations applied"))
	}

	db, err := postgres.NewPostgresDB(ctx, log, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return db, nil
}

func (a *App) orderRepository(ctx context.Context, cfg *config.Config, checks map[string]httpdelivery.Check) (repository.OrderRepository, error) {
	if cfg.Storage == config.StorageMemory {
		return memory.NewOrderRepository(), nil
	}

	db, err := openDatabase(ctx, a.log, cfg.Postgres)
	if err != nil {
		return nil, err
	}
	a.addCloser(db.Close)
	checks["postgres"] = db.Ping

	return orderRepository.NewOrderRepository(a.log, db.GetDB()), nil
}

func (a *App) paymentRepository(ctx context.Context, cfg *config.Config, checks map[string]httpdelivery.Check) (repository.PaymentRepository, error) {
	if cfg.Storage == config.StorageMemory {
		return memory.NewPaymentRepository(), nil
	}

	db, err := openDatabase(ctx, a.log, cfg.Postgres)
	if err != nil {
		return nil, err
	}
	a.addCloser(db.Close)
	checks["postgres"] = db.Ping

	return paymentRepository.NewPaymentRepository(a.log, db.GetDB()), nil
}

func (a *App) bus(log logger.Logger, cfg *config.Config, m *metrics.Metrics, o options, checks map[string]httpdelivery.Check) EventBus {
	bus := o.bus
	if bus == nil {
		bus = NewBus(log, cfg.Kafka, m)
		a.addCloser(bus.Close)
	}
	checks["bus"] = bus.Healthy

	return bus
}
