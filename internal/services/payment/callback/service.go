package callback

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

type eventVerifier interface {
	VerifyEvent(payload []byte, signature string) (models.CallbackEvent, error)
}

type outcomeStore interface {
	HasOutcome(ctx context.Context, authorizationID string, eventType models.CallbackEventType) (bool, error)
	HasCompletedOrder(ctx context.Context, orderUUID uuid.UUID) (bool, error)
	AppendOutcome(ctx context.Context, outcome models.PaymentOutcome) (bool, error)
}

type orderClient interface {
	UpdateStatus(ctx context.Context, orderUUID uuid.UUID, status models.OrderStatus) error
	OrderStatus(ctx context.Context, orderUUID uuid.UUID) (models.OrderStatus, error)
}

type callbackRecorder interface {
	RecordCallback(ctx context.Context, eventType, result string)
}

// Results reported for callbacks that did not produce an outcome.
const (
	resultDuplicate     = "duplicate"
	resultIgnored       = "ignored"
	resultOrderNotFound = "order_not_found"
)

type CallbackService struct {
	log     logger.Logger
	metrics callbackRecorder
	now     func() time.Time

	verifier eventVerifier
	outcomes outcomeStore
	orders   orderClient
}

func New(
	log logger.Logger,
	verifier eventVerifier,
	outcomes outcomeStore,
	orders orderClient,
	metrics callbackRecorder,
) *CallbackService {
	return &CallbackService{
		log:      log,
		metrics:  metrics,
		now:      time.Now,
		verifier: verifier,
		outcomes: outcomes,
		orders:   orders,
	}
}

// HandleCallback verifies a processor notification and reconciles it with the
// order. A nil error acknowledges the notification; any other error makes the
// processor deliver it again.
func (cs *CallbackService) HandleCallback(ctx context.Context, payload []byte, signature string) error {
	const op = "services.payment.callback.HandleCallback"

	event, err := cs.verifier.VerifyEvent(payload, signature)
	if err != nil {
		cs.log.WarnContext(ctx, op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	authorization := event.Type == models.CallbackAuthorizationSucceeded || event.Type == models.CallbackAuthorizationFailed
	if authorization && event.OrderUUID == uuid.Nil {
		cs.log.WarnContext(ctx, op,
			logger.String("event_id", event.ID),
			logger.String("authorization_id", event.AuthorizationID),
			logger.String("message", "payment intent has no order id"),
		)
		cs.metrics.RecordCallback(ctx, string(event.Type), resultIgnored)
		return nil
	}

	switch event.Type {
	case models.CallbackAuthorizationSucceeded:
		return cs.handleSucceeded(ctx, event)
	case models.CallbackAuthorizationFailed:
		return cs.handleFailed(ctx, event)
	default:
		cs.log.DebugContext(ctx, op,
			logger.String("event_id", event.ID),
			logger.String("event_type", string(event.Type)),
			logger.String("message", "event ignored"),
		)
		cs.metrics.RecordCallback(ctx, string(event.Type), resultIgnored)
		return nil
	}
}

func (cs *CallbackService) handleSucceeded(ctx context.Context, event models.CallbackEvent) error {
	const op = "services.payment.callback.handleSucceeded"

	seen, err := cs.outcomes.HasOutcome(ctx, event.AuthorizationID, event.Type)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if seen {
		cs.log.InfoContext(ctx, op,
			logger.String("authorization_id", event.AuthorizationID),
			logger.String("event_id", event.ID),
			logger.String("message", "already reconciled"),
		)
		cs.metrics.RecordCallback(ctx, string(event.Type), resultDuplicate)
		return nil
	}

	result := models.OutcomeOrderCompleted

	err = cs.orders.UpdateStatus(ctx, event.OrderUUID, models.OrderStatusCompleted)
	switch {
	case err == nil:
	case errors.Is(err, internalErrors.ErrInvalidTransition):
		if result, err = cs.terminalResult(ctx, event); err != nil {
			cs.log.ErrorContext(ctx, op,
				logger.String("authorization_id", event.AuthorizationID),
				logger.String("order_uuid", event.OrderUUID.String()),
				logger.Err(err),
			)
			return fmt.Errorf("%s: %w", op, err)
		}
	case errors.Is(err, internalErrors.ErrOrderNotFound):
		cs.log.ErrorContext(ctx, op,
			logger.String("authorization_id", event.AuthorizationID),
			logger.String("order_uuid", event.OrderUUID.String()),
			logger.String("message", "payment references unknown order"),
		)
		cs.metrics.RecordCallback(ctx, string(event.Type), resultOrderNotFound)
		return nil
	default:
		cs.log.ErrorContext(ctx, op,
			logger.String("authorization_id", event.AuthorizationID),
			logger.String("order_uuid", event.OrderUUID.String()),
			logger.Err(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return cs.appendOutcome(ctx, event, result)
}

// terminalResult classifies an order that was no longer pending. A completed
// order nobody recorded is this authorization's own earlier completion whose
// outcome was never written.
func (cs *CallbackService) terminalResult(ctx context.Context, event models.CallbackEvent) (models.OutcomeResult, error) {
	status, err := cs.orders.OrderStatus(ctx, event.OrderUUID)
	if err != nil {
		return "", err
	}
	if status != models.OrderStatusCompleted {
		return models.OutcomeOrderAlreadyTerminal, nil
	}

	recorded, err := cs.outcomes.HasCompletedOrder(ctx, event.OrderUUID)
	if err != nil {
		return "", err
	}
	if recorded {
		return models.OutcomeOrderAlreadyTerminal, nil
	}

	return models.OutcomeOrderCompleted, nil
}

// handleFailed leaves the order pending so the customer may retry payment.
func (cs *CallbackService) handleFailed(ctx context.Context, event models.CallbackEvent) error {
	const op = "services.payment.callback.handleFailed"

	cs.log.WarnContext(ctx, op,
		logger.String("authorization_id", event.AuthorizationID),
		logger.String("order_uuid", event.OrderUUID.String()),
		logger.String("message", "authorization failed"),
	)

	return cs.appendOutcome(ctx, event, models.OutcomeOrderLeftPending)
}

func (cs *CallbackService) appendOutcome(ctx context.Context, event models.CallbackEvent, result models.OutcomeResult) error {
	const op = "services.payment.callback.appendOutcome"

	inserted, err := cs.outcomes.AppendOutcome(ctx, models.PaymentOutcome{
		AuthorizationID: event.AuthorizationID,
		EventID:         event.ID,
		EventType:       event.Type,
		OrderUUID:       event.OrderUUID,
		Result:          result,
		CreatedAt:       models.Timestamp(cs.now()),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !inserted {
		cs.metrics.RecordCallback(ctx, string(event.Type), resultDuplicate)
		return nil
	}

	cs.log.InfoContext(ctx, op,
		logger.String("authorization_id", event.AuthorizationID),
		logger.String("order_uuid", event.OrderUUID.String()),
		logger.String("result", string(result)),
	)
	cs.metrics.RecordCallback(ctx, string(event.Type), string(result))

	return nil
}
