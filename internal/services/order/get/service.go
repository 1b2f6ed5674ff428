package get

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type orderGetter interface {
	Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)
	PendingOlderThan(ctx context.Context, cutoff time.Time) ([]models.Order, error)
}

type orderCache interface {
	Get(key uuid.UUID) (*models.Order, bool)
	Add(key uuid.UUID, value *models.Order) (evicted bool)
}

type OrderRetrievalService struct {
	log   logger.Logger
	cache orderCache
	now   func() time.Time

	orderGetter orderGetter
}

func New(log logger.Logger, cache orderCache, orderGetter orderGetter) *OrderRetrievalService {
	return &OrderRetrievalService{
		log:         log,
		cache:       cache,
		now:         time.Now,
		orderGetter: orderGetter,
	}
}

func (os *OrderRetrievalService) OrderByUUID(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error) {
	const op = "services.order.get.OrderByUUID"

	if order, ok := os.cache.Get(orderUUID); ok {
		os.log.DebugContext(ctx, op, logger.String("order_uuid", orderUUID.String()), logger.String("source", "cache"))
		return order, nil
	}

	order, err := os.orderGetter.Order(ctx, orderUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_ = os.cache.Add(orderUUID, order)

	return order, nil
}

func (os *OrderRetrievalService) Orders(ctx context.Context) ([]models.Order, error) {
	const op = "services.order.get.Orders"

	orders, err := os.orderGetter.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

// PendingOlderThan lists orders still pending after age.
func (os *OrderRetrievalService) PendingOlderThan(ctx context.Context, age time.Duration) ([]models.Order, error) {
	const op = "services.order.get.PendingOlderThan"

	if age < 0 {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.WithDetail(internalErrors.ErrValidation, "age must not be negative"))
	}

	orders, err := os.orderGetter.PendingOlderThan(ctx, os.now().Add(-age))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}
