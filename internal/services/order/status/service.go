package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type orderStatusUpdater interface {
	UpdateStatus(ctx context.Context, orderUUID uuid.UUID, status models.OrderStatus, now time.Time) (*models.Order, error)
}

type orderCache interface {
	Add(key uuid.UUID, value *models.Order) (evicted bool)
	Remove(key uuid.UUID) (present bool)
}

type transitionRecorder interface {
	RecordStatusTransition(ctx context.Context, status string)
}

type OrderStatusService struct {
	log     logger.Logger
	cache   orderCache
	metrics transitionRecorder
	now     func() time.Time

	updater orderStatusUpdater
}

func New(log logger.Logger, cache orderCache, updater orderStatusUpdater, metrics transitionRecorder) *OrderStatusService {
	return &OrderStatusService{
		log:     log,
		cache:   cache,
		metrics: metrics,
		now:     time.Now,
		updater: updater,
	}
}

// UpdateStatus applies pending -> completed or pending -> cancelled. The
// storage layer decides, so a missing order is reported before an illegal
// target status.
func (os *OrderStatusService) UpdateStatus(
	ctx context.Context,
	orderUUID uuid.UUID,
	status models.OrderStatus,
) (*models.Order, error) {
	const op = "services.order.status.UpdateStatus"

	if !status.Valid() {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.WithDetail(internalErrors.ErrValidation, "unknown status %q", status))
	}

	order, err := os.updater.UpdateStatus(ctx, orderUUID, status, os.now())
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidTransition) {
			// The cached copy may still say pending.
			os.cache.Remove(orderUUID)
		}
		if !errors.Is(err, internalErrors.ErrOrderNotFound) && !errors.Is(err, internalErrors.ErrInvalidTransition) {
			os.log.ErrorContext(ctx, op, logger.String("order_uuid", orderUUID.String()), logger.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_ = os.cache.Add(orderUUID, order)
	os.metrics.RecordStatusTransition(ctx, string(status))

	os.log.InfoContext(ctx, op,
		logger.String("order_uuid", orderUUID.String()),
		logger.String("status", string(status)),
	)

	return order, nil
}
