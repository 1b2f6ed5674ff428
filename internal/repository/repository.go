package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	"github.com/tumbleweedd/order_pipeline/internal/repository/memory"
	"github.com/tumbleweedd/order_pipeline/internal/repository/order"
	"github.com/tumbleweedd/order_pipeline/internal/repository/payment"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

type OrderCreator interface {
	Create(ctx context.Context, order *models.Order) error
}

type OrderGetter interface {
	Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)
	PendingOlderThan(ctx context.Context, cutoff time.Time) ([]models.Order, error)
}

type OrderStatusUpdater interface {
	UpdateStatus(ctx context.Context, orderUUID uuid.UUID, status models.OrderStatus, now time.Time) (*models.Order, error)
}

type OrderRepository interface {
	OrderCreator
	OrderGetter
	OrderStatusUpdater
}

type PaymentCreator interface {
	Create(ctx context.Context, payment models.Payment) error
}

type PaymentGetter interface {
	ByAuthorizationID(ctx context.Context, authorizationID string) (*models.Payment, error)
	Outcomes(ctx context.Context, authorizationID string) ([]models.PaymentOutcome, error)
}

type OutcomeStore interface {
	HasOutcome(ctx context.Context, authorizationID string, eventType models.CallbackEventType) (bool, error)
	HasCompletedOrder(ctx context.Context, orderUUID uuid.UUID) (bool, error)
	AppendOutcome(ctx context.Context, outcome models.PaymentOutcome) (bool, error)
}

type ObservedOrderRecorder interface {
	RecordObserved(ctx context.Context, observed models.ObservedOrder) (bool, error)
}

type PaymentRepository interface {
	PaymentCreator
	PaymentGetter
	OutcomeStore
	ObservedOrderRecorder
}

var (
	_ OrderRepository   = (*order.Repository)(nil)
	_ OrderRepository   = (*memory.OrderRepository)(nil)
	_ PaymentRepository = (*payment.Repository)(nil)
	_ PaymentRepository = (*memory.PaymentRepository)(nil)
)
