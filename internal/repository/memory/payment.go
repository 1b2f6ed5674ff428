package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
)

type outcomeKey struct {
	authorizationID string
	eventType       models.CallbackEventType
}

type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]models.Payment
	outcomes []models.PaymentOutcome
	seen     map[outcomeKey]struct{}
	observed map[uuid.UUID]models.ObservedOrder
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[string]models.Payment),
		seen:     make(map[outcomeKey]struct{}),
		observed: make(map[uuid.UUID]models.ObservedOrder),
	}
}

func (r *PaymentRepository) Create(_ context.Context, payment models.Payment) error {
	const op = "repository.memory.PaymentRepository.Create"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[payment.AuthorizationID]; ok {
		return fmt.Errorf("%s: payment %s already exists", op, payment.AuthorizationID)
	}
	r.payments[payment.AuthorizationID] = payment

	return nil
}

func (r *PaymentRepository) ByAuthorizationID(_ context.Context, authorizationID string) (*models.Payment, error) {
	const op = "repository.memory.PaymentRepository.ByAuthorizationID"

	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[authorizationID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrPaymentNotFound)
	}

	return &payment, nil
}

func (r *PaymentRepository) Outcomes(_ context.Context, authorizationID string) ([]models.PaymentOutcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	outcomes := make([]models.PaymentOutcome, 0)
	for _, outcome := range r.outcomes {
		if outcome.AuthorizationID == authorizationID {
			outcomes = append(outcomes, outcome)
		}
	}

	return outcomes, nil
}

func (r *PaymentRepository) HasOutcome(
	_ context.Context,
	authorizationID string,
	eventType models.CallbackEventType,
) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.seen[outcomeKey{authorizationID: authorizationID, eventType: eventType}]

	return ok, nil
}

func (r *PaymentRepository) HasCompletedOrder(_ context.Context, orderUUID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, outcome := range r.outcomes {
		if outcome.OrderUUID == orderUUID && outcome.Result == models.OutcomeOrderCompleted {
			return true, nil
		}
	}

	return false, nil
}

func (r *PaymentRepository) AppendOutcome(_ context.Context, outcome models.PaymentOutcome) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := outcomeKey{authorizationID: outcome.AuthorizationID, eventType: outcome.EventType}
	if _, ok := r.seen[key]; ok {
		return false, nil
	}

	r.seen[key] = struct{}{}
	r.outcomes = append(r.outcomes, outcome)

	return true, nil
}

func (r *PaymentRepository) RecordObserved(_ context.Context, observed models.ObservedOrder) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.observed[observed.OrderUUID]; ok {
		return false, nil
	}
	r.observed[observed.OrderUUID] = observed

	return true, nil
}

// ObservedCount is used by tests to assert idempotent consumption.
func (r *PaymentRepository) ObservedCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.observed)
}

// PaymentCount is used by tests to assert that consumption never authorizes.
func (r *PaymentRepository) PaymentCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.payments)
}
