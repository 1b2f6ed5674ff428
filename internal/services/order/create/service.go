package create

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type orderCreator interface {
	Create(ctx context.Context, order *models.Order) error
}

type eventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

type orderCache interface {
	Add(key uuid.UUID, value *models.Order) (evicted bool)
}

type publishRecorder interface {
	RecordEventPublished(ctx context.Context)
	RecordPublishFailure(ctx context.Context)
}

type Config struct {
	Topic          string
	PublishTimeout time.Duration
}

type OrderCreationService struct {
	log     logger.Logger
	cache   orderCache
	metrics publishRecorder
	cfg     Config
	now     func() time.Time

	orderCreator orderCreator
	publisher    eventPublisher
}

func New(
	log logger.Logger,
	cache orderCache,
	orderCreator orderCreator,
	publisher eventPublisher,
	metrics publishRecorder,
	cfg Config,
) *OrderCreationService {
	return &OrderCreationService{
		log:          log,
		cache:        cache,
		metrics:      metrics,
		cfg:          cfg,
		now:          time.Now,
		orderCreator: orderCreator,
		publisher:    publisher,
	}
}

// Create persists a pending order and then announces it on the bus. The order
// is returned even when the announcement fails; stale pending orders are
// re-announced by the republisher.
func (os *OrderCreationService) Create(
	ctx context.Context,
	userRef, productRef string,
	quantity int,
	totalAmount decimal.Decimal,
) (*models.Order, error) {
	const op = "services.order.create.Create"

	order, err := models.NewOrder(userRef, productRef, quantity, totalAmount, os.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = os.orderCreator.Create(ctx, order); err != nil {
		os.log.ErrorContext(ctx, op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_ = os.cache.Add(order.OrderUUID, order)

	os.publishCreated(ctx, order)

	return order, nil
}

func (os *OrderCreationService) publishCreated(ctx context.Context, order *models.Order) {
	const op = "services.order.create.publishCreated"

	payload, err := json.Marshal(models.NewOrderCreatedEvent(order))
	if err != nil {
		os.log.ErrorContext(ctx, op, logger.String("order_uuid", order.OrderUUID.String()), logger.Err(err))
		os.metrics.RecordPublishFailure(ctx)
		return
	}

	// The order is already committed, so the caller going away must not cancel the publish.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), os.cfg.PublishTimeout)
	defer cancel()

	if err = os.publisher.Publish(publishCtx, os.cfg.Topic, order.OrderUUID.String(), payload); err != nil {
		os.log.ErrorContext(ctx, op,
			logger.String("order_uuid", order.OrderUUID.String()),
			logger.String("message", "order_created not published"),
			logger.Err(err),
		)
		os.metrics.RecordPublishFailure(ctx)
		return
	}

	os.metrics.RecordEventPublished(ctx)
}
