package processor

import (
	"context"

	"github.com/google/uuid"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	"github.com/tumbleweedd/order_pipeline/internal/processor/stripe"
)

//go:generate mockgen -source=processor.go -destination=mocks/mock_processor.go -package=mocks

type Authorizer interface {
	Authorize(ctx context.Context, orderUUID uuid.UUID, amount int64, currency string) (models.Authorization, error)
}

type EventVerifier interface {
	VerifyEvent(payload []byte, signature string) (models.CallbackEvent, error)
}

var (
	_ Authorizer    = (*stripe.Processor)(nil)
	_ EventVerifier = (*stripe.Processor)(nil)
)
