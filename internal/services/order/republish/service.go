package republish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type pendingGetter interface {
	PendingOlderThan(ctx context.Context, cutoff time.Time) ([]models.Order, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

type republishRecorder interface {
	RecordRepublished(ctx context.Context, n int)
}

type Service struct {
	log            logger.Logger
	topic          string
	publishTimeout time.Duration
	metrics        republishRecorder
	now            func() time.Time

	pendingGetter pendingGetter
	publisher     eventPublisher
}

func New(
	log logger.Logger,
	topic string,
	publishTimeout time.Duration,
	pendingGetter pendingGetter,
	publisher eventPublisher,
	metrics republishRecorder,
) *Service {
	return &Service{
		log:            log,
		topic:          topic,
		publishTimeout: publishTimeout,
		metrics:        metrics,
		now:            time.Now,
		pendingGetter:  pendingGetter,
		publisher:      publisher,
	}
}

// Republish re-emits order_created for every order still pending after age.
// It keeps going past individual failures and reports how many were sent.
func (s *Service) Republish(ctx context.Context, age time.Duration) (int, error) {
	const op = "services.order.republish.Republish"

	orders, err := s.pendingGetter.PendingOlderThan(ctx, s.now().Add(-age))
	if err != nil {
		return 0, fmt.Errorf("%s: fetch pending orders: %w", op, err)
	}

	var (
		sent int
		errs []error
	)

	for i := range orders {
		if err = s.publish(ctx, &orders[i]); err != nil {
			s.log.WarnContext(ctx, op, logger.String("order_uuid", orders[i].OrderUUID.String()), logger.Err(err))
			errs = append(errs, err)
			continue
		}
		sent++
	}

	s.metrics.RecordRepublished(ctx, sent)
	s.log.InfoContext(ctx, op, logger.Int("pending", len(orders)), logger.Int("sent", sent))

	if len(errs) > 0 {
		return sent, fmt.Errorf("%s: %w", op, errors.Join(errs...))
	}

	return sent, nil
}

func (s *Service) publish(ctx context.Context, order *models.Order) error {
	payload, err := json.Marshal(models.NewOrderCreatedEvent(order))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	return s.publisher.Publish(publishCtx, s.topic, order.OrderUUID.String(), payload)
}
