package clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/tumbleweedd/order_pipeline/internal/clients/orders"
	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
)

//go:generate mockgen -source=clients.go -destination=mocks/mock_clients.go -package=mocks

type OrderClient interface {
	UpdateStatus(ctx context.Context, orderUUID uuid.UUID, status models.OrderStatus) error
	OrderStatus(ctx context.Context, orderUUID uuid.UUID) (models.OrderStatus, error)
}

var _ OrderClient = (*orders.Client)(nil)
