package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const orderColumns = `order_uuid, user_ref, product_ref, quantity, total_amount, status, created_at, updated_at`

type Repository struct {
	log logger.Logger
	db  *sqlx.DB
}

func NewOrderRepository(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

func (or *Repository) Create(ctx context.Context, order *models.Order) error {
	const op = "repository.order.Create"

	const query = `INSERT INTO orders (` + orderColumns + `)
		VALUES (:order_uuid, :user_ref, :product_ref, :quantity, :total_amount, :status, :created_at, :updated_at)`

	if _, err := or.db.NamedExecContext(ctx, query, order); err != nil {
		or.log.ErrorContext(ctx, op, logger.Err(err))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return nil
}

func (or *Repository) Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error) {
	const op = "repository.order.Order"

	const query = `SELECT ` + orderColumns + ` FROM orders WHERE order_uuid = $1`

	var order models.Order
	if err := or.db.GetContext(ctx, &order, query, orderUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrOrderNotFound)
		}
		or.log.ErrorContext(ctx, op, logger.Err(err))
		return nil, fmt.Errorf("%s: scan order: %w", op, err)
	}
	inUTC(&order)

	return &order, nil
}

func (or *Repository) Orders(ctx context.Context) ([]models.Order, error) {
	const op = "repository.order.Orders"

	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at, order_uuid`

	orders := make([]models.Order, 0)
	if err := or.db.SelectContext(ctx, &orders, query); err != nil {
		or.log.ErrorContext(ctx, op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}
	for i := range orders {
		inUTC(&orders[i])
	}

	return orders, nil
}

// UpdateStatus moves a pending order to status in one conditional statement.
// Concurrent callers cannot both succeed. A target no order can reach skips the
// write and is reported against the stored order.
func (or *Repository) UpdateStatus(
	ctx context.Context,
	orderUUID uuid.UUID,
	status models.OrderStatus,
	now time.Time,
) (*models.Order, error) {
	const op = "repository.order.UpdateStatus"

	const query = `UPDATE orders SET status = $1, updated_at = $2
		WHERE order_uuid = $3 AND status = $4
		RETURNING ` + orderColumns

	if models.CanTransition(models.OrderStatusPending, status) {
		var order models.Order
		err := or.db.GetContext(ctx, &order, query, status, models.Timestamp(now), orderUUID, models.OrderStatusPending)
		if err == nil {
			inUTC(&order)
			return &order, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			or.log.ErrorContext(ctx, op, logger.Err(err))
			return nil, fmt.Errorf("%s: execute statement: %w", op, err)
		}
	}

	current, err := or.Order(ctx, orderUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return nil, fmt.Errorf("%s: %w", op, internalErrors.WithDetail(internalErrors.ErrInvalidTransition, "%s -> %s", current.Status, status))
}

// PendingOlderThan lists pending orders created before cutoff, oldest first.
func (or *Repository) PendingOlderThan(ctx context.Context, cutoff time.Time) ([]models.Order, error) {
	const op = "repository.order.PendingOlderThan"

	const query = `SELECT ` + orderColumns + ` FROM orders
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at, order_uuid`

	orders := make([]models.Order, 0)
	if err := or.db.SelectContext(ctx, &orders, query, models.OrderStatusPending, cutoff.UTC()); err != nil {
		or.log.ErrorContext(ctx, op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}
	for i := range orders {
		inUTC(&orders[i])
	}

	return orders, nil
}

// inUTC drops the session time zone lib/pq attaches to scanned timestamps.
func inUTC(order *models.Order) {
	order.CreatedAt = order.CreatedAt.UTC()
	order.UpdatedAt = order.UpdatedAt.UTC()
}
