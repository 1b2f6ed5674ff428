package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type Repository struct {
	log logger.Logger
	db  *sqlx.DB
}

func NewPaymentRepository(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

func (pr *Repository) Create(ctx context.Context, payment models.Payment) error {
	const op = "repository.payment.Create"

	const query = `INSERT INTO payments (authorization_id, order_uuid, status, amount, currency, created_at)
		VALUES (:authorization_id, :order_uuid, :status, :amount, :currency, :created_at)`

	if _, err := pr.db.NamedExecContext(ctx, query, payment); err != nil {
		pr.log.ErrorContext(ctx, op, logger.Err(err))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return nil
}

func (pr *Repository) ByAuthorizationID(ctx context.Context, authorizationID string) (*models.Payment, error) {
	const op = "repository.payment.ByAuthorizationID"

	const query = `SELECT authorization_id, order_uuid, status, amount, currency, created_at
		FROM payments WHERE authorization_id = $1`

	var payment models.Payment
	if err := pr.db.GetContext(ctx, &payment, query, authorizationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrPaymentNotFound)
		}
		pr.log.ErrorContext(ctx, op, logger.Err(err))
		return nil, fmt.Errorf("%s: scan payment: %w", op, err)
	}

	return &payment, nil
}

// Outcomes returns the reconciliation entries of one authorization in insertion order.
func (pr *Repository) Outcomes(ctx context.Context, authorizationID string) ([]models.PaymentOutcome, error) {
	const op = "repository.payment.Outcomes"

	const query = `SELECT authorization_id, event_id, event_type, order_uuid, result, created_at
		FROM payment_outcomes WHERE authorization_id = $1 ORDER BY id`

	outcomes := make([]models.PaymentOutcome, 0)
	if err := pr.db.SelectContext(ctx, &outcomes, query, authorizationID); err != nil {
		pr.log.ErrorContext(ctx, op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return outcomes, nil
}

func (pr *Repository) HasOutcome(
	ctx context.Context,
	authorizationID string,
	eventType models.CallbackEventType,
) (bool, error) {
	const op = "repository.payment.HasOutcome"

	const query = `SELECT EXISTS (
		SELECT 1 FROM payment_outcomes WHERE authorization_id = $1 AND event_type = $2
	)`

	var exists bool
	if err := pr.db.GetContext(ctx, &exists, query, authorizationID, eventType); err != nil {
		pr.log.ErrorContext(ctx, op, logger.Err(err))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return exists, nil
}

// HasCompletedOrder reports whether any authorization already recorded the
// completion of the order.
func (pr *Repository) HasCompletedOrder(ctx context.Context, orderUUID uuid.UUID) (bool, error) {
	const op = "repository.payment.HasCompletedOrder"

	const query = `SELECT EXISTS (
		SELECT 1 FROM payment_outcomes WHERE order_uuid = $1 AND result = $2
	)`

	var exists bool
	if err := pr.db.GetContext(ctx, &exists, query, orderUUID, models.OutcomeOrderCompleted); err != nil {
		pr.log.ErrorContext(ctx, op, logger.Err(err))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return exists, nil
}

// AppendOutcome reports false when an outcome for the same authorization and
// event type is already recorded.
func (pr *Repository) AppendOutcome(ctx context.Context, outcome models.PaymentOutcome) (bool, error) {
	const op = "repository.payment.AppendOutcome"

	const query = `INSERT INTO payment_outcomes (authorization_id, event_id, event_type, order_uuid, result, created_at)
		VALUES (:authorization_id, :event_id, :event_type, :order_uuid, :result, :created_at)
		ON CONFLICT (authorization_id, event_type) DO NOTHING`

	res, err := pr.db.NamedExecContext(ctx, query, outcome)
	if err != nil {
		pr.log.ErrorContext(ctx, op, logger.Err(err))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: rows affected: %w", op, err)
	}

	return affected == 1, nil
}

// RecordObserved reports false when the order was already observed.
func (pr *Repository) RecordObserved(ctx context.Context, observed models.ObservedOrder) (bool, error) {
	const op = "repository.payment.RecordObserved"

	const query = `INSERT INTO observed_orders (order_uuid, event_uuid, total_amount, observed_at)
		VALUES (:order_uuid, :event_uuid, :total_amount, :observed_at)
		ON CONFLICT (order_uuid) DO NOTHING`

	res, err := pr.db.NamedExecContext(ctx, query, observed)
	if err != nil {
		pr.log.ErrorContext(ctx, op, logger.Err(err))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: rows affected: %w", op, err)
	}

	return affected == 1, nil
}
