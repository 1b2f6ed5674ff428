package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type observedRecorder interface {
	RecordObserved(ctx context.Context, observed models.ObservedOrder) (bool, error)
}

// OrderEventsService observes order_created events. It never starts a payment:
// authorizations are created only through the payment API.
type OrderEventsService struct {
	log      logger.Logger
	recorder observedRecorder
	now      func() time.Time
}

func New(log logger.Logger, recorder observedRecorder) *OrderEventsService {
	return &OrderEventsService{
		log:      log,
		recorder: recorder,
		now:      time.Now,
	}
}

// OnOrderCreated records the first delivery of an order. Redeliveries are no-ops.
func (os *OrderEventsService) OnOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error {
	const op = "services.payment.events.OnOrderCreated"

	if event.OrderUUID == uuid.Nil {
		return fmt.Errorf("%s: %w: event without orderId", op, internalErrors.ErrValidation)
	}

	inserted, err := os.recorder.RecordObserved(ctx, models.ObservedOrder{
		OrderUUID:   event.OrderUUID,
		EventUUID:   event.EventUUID,
		TotalAmount: event.TotalAmount.StringFixed(2),
		ObservedAt:  models.Timestamp(os.now()),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !inserted {
		os.log.DebugContext(ctx, op,
			logger.String("order_uuid", event.OrderUUID.String()),
			logger.String("message", "order already observed"),
		)
		return nil
	}

	os.log.InfoContext(ctx, op,
		logger.String("order_uuid", event.OrderUUID.String()),
		logger.String("total_amount", event.TotalAmount.StringFixed(2)),
	)

	return nil
}
