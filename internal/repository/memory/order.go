package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
)

// OrderRepository keeps orders in a map. Status changes are applied under the
// lock so they are as atomic as the conditional UPDATE of the SQL repository.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]models.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[uuid.UUID]models.Order)}
}

func (r *OrderRepository) Create(_ context.Context, order *models.Order) error {
	const op = "repository.memory.OrderRepository.Create"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.OrderUUID]; ok {
		return fmt.Errorf("%s: order %s already exists", op, order.OrderUUID)
	}
	r.orders[order.OrderUUID] = *order

	return nil
}

func (r *OrderRepository) Order(_ context.Context, orderUUID uuid.UUID) (*models.Order, error) {
	const op = "repository.memory.OrderRepository.Order"

	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderUUID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrOrderNotFound)
	}

	return &order, nil
}

func (r *OrderRepository) Orders(_ context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(models.Order) bool { return true }), nil
}

func (r *OrderRepository) UpdateStatus(
	_ context.Context,
	orderUUID uuid.UUID,
	status models.OrderStatus,
	now time.Time,
) (*models.Order, error) {
	const op = "repository.memory.OrderRepository.UpdateStatus"

	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderUUID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrOrderNotFound)
	}
	if !models.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.WithDetail(internalErrors.ErrInvalidTransition, "%s -> %s", order.Status, status))
	}

	order.Status = status
	order.UpdatedAt = models.Timestamp(now)
	r.orders[orderUUID] = order

	return &order, nil
}

func (r *OrderRepository) PendingOlderThan(_ context.Context, cutoff time.Time) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(o models.Order) bool {
		return o.Status == models.OrderStatusPending && o.CreatedAt.Before(cutoff)
	}), nil
}

func (r *OrderRepository) sorted(keep func(models.Order) bool) []models.Order {
	orders := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if keep(order) {
			orders = append(orders, order)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].OrderUUID.String() < orders[j].OrderUUID.String()
		}
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})

	return orders
}
