package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderCreatedEvent is the frozen snapshot published on the order topic.
type OrderCreatedEvent struct {
	EventUUID   uuid.UUID       `json:"eventId"`
	OrderUUID   uuid.UUID       `json:"orderId"`
	UserRef     string          `json:"userRef"`
	ProductRef  string          `json:"productRef"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func NewOrderCreatedEvent(order *Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		EventUUID:   uuid.New(),
		OrderUUID:   order.OrderUUID,
		UserRef:     order.UserRef,
		ProductRef:  order.ProductRef,
		Quantity:    order.Quantity,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

type CallbackEventType string

const (
	CallbackAuthorizationSucceeded CallbackEventType = "authorization_succeeded"
	CallbackAuthorizationFailed    CallbackEventType = "authorization_failed"
)

// CallbackEvent is a processor notification after its signature was verified.
type CallbackEvent struct {
	ID              string
	Type            CallbackEventType
	AuthorizationID string
	OrderUUID       uuid.UUID
	Amount          int64
	Currency        string
}
