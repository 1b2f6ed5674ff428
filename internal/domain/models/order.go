package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransition reports whether from -> to is an edge of the order state machine.
func CanTransition(from, to OrderStatus) bool {
	return from == OrderStatusPending && (to == OrderStatusCompleted || to == OrderStatusCancelled)
}

type Order struct {
	OrderUUID   uuid.UUID       `json:"orderId" db:"order_uuid"`
	UserRef     string          `json:"userRef" db:"user_ref"`
	ProductRef  string          `json:"productRef" db:"product_ref"`
	Quantity    int             `json:"quantity" db:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Status      OrderStatus     `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// Amounts are stored as NUMERIC(20,4).
const amountScale = 4

var maxAmount = decimal.New(1, 16)

// Timestamp returns t in UTC at the microsecond precision Postgres keeps, so a
// record read back from storage equals the one that was written.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// NewOrder validates the input and returns a pending order with a fresh id.
func NewOrder(userRef, productRef string, quantity int, totalAmount decimal.Decimal, now time.Time) (*Order, error) {
	switch {
	case strings.TrimSpace(userRef) == "":
		return nil, internalErrors.WithDetail(internalErrors.ErrValidation, "userRef is required")
	case strings.TrimSpace(productRef) == "":
		return nil, internalErrors.WithDetail(internalErrors.ErrValidation, "productRef is required")
	case quantity <= 0:
		return nil, internalErrors.WithDetail(internalErrors.ErrValidation, "quantity must be positive")
	case totalAmount.IsNegative():
		return nil, internalErrors.WithDetail(internalErrors.ErrValidation, "totalAmount must not be negative")
	case !totalAmount.Equal(totalAmount.Truncate(amountScale)):
		return nil, internalErrors.WithDetail(internalErrors.ErrValidation, "totalAmount must have at most 4 decimal places")
	case totalAmount.GreaterThanOrEqual(maxAmount):
		return nil, internalErrors.WithDetail(internalErrors.ErrValidation, "totalAmount must have at most 16 integer digits")
	}

	now = Timestamp(now)

	return &Order{
		OrderUUID:   uuid.New(),
		UserRef:     userRef,
		ProductRef:  productRef,
		Quantity:    quantity,
		TotalAmount: totalAmount,
		Status:      OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
