package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	AuthorizationID string    `json:"authorizationId" db:"authorization_id"`
	OrderUUID       uuid.UUID `json:"orderId" db:"order_uuid"`
	Status          string    `json:"status" db:"status"`
	Amount          int64     `json:"amount" db:"amount"`
	Currency        string    `json:"currency" db:"currency"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type OutcomeResult string

const (
	OutcomeOrderCompleted       OutcomeResult = "order_completed"
	OutcomeOrderAlreadyTerminal OutcomeResult = "order_already_terminal"
	OutcomeOrderLeftPending     OutcomeResult = "order_left_pending"
)

// PaymentOutcome is an append-only reconciliation entry. At most one exists per
// authorization and event type.
type PaymentOutcome struct {
	AuthorizationID string            `json:"authorizationId" db:"authorization_id"`
	EventID         string            `json:"eventId" db:"event_id"`
	EventType       CallbackEventType `json:"eventType" db:"event_type"`
	OrderUUID       uuid.UUID         `json:"orderId" db:"order_uuid"`
	Result          OutcomeResult     `json:"result" db:"result"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
}

// Authorization is what the processor hands back for a new payment attempt.
type Authorization struct {
	ID           string
	ClientSecret string
	Status       string
}

// PaymentView is the payment record with the status derived from its outcomes.
type PaymentView struct {
	Payment       Payment          `json:"payment"`
	CurrentStatus string           `json:"currentStatus"`
	Outcomes      []PaymentOutcome `json:"outcomes"`
}

func NewPaymentView(payment Payment, outcomes []PaymentOutcome) PaymentView {
	current := payment.Status
	if len(outcomes) > 0 {
		switch outcomes[len(outcomes)-1].EventType {
		case CallbackAuthorizationSucceeded:
			current = "succeeded"
		case CallbackAuthorizationFailed:
			current = "failed"
		}
	}

	if outcomes == nil {
		outcomes = []PaymentOutcome{}
	}

	return PaymentView{Payment: payment, CurrentStatus: current, Outcomes: outcomes}
}

// ObservedOrder records the first delivery of an order_created event on the payment side.
type ObservedOrder struct {
	OrderUUID   uuid.UUID `db:"order_uuid"`
	EventUUID   uuid.UUID `db:"event_uuid"`
	TotalAmount string    `db:"total_amount"`
	ObservedAt  time.Time `db:"observed_at"`
}
