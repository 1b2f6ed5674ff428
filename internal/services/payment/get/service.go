package get

import (
	"context"
	"fmt"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type paymentGetter interface {
	ByAuthorizationID(ctx context.Context, authorizationID string) (*models.Payment, error)
	Outcomes(ctx context.Context, authorizationID string) ([]models.PaymentOutcome, error)
}

type PaymentGetService struct {
	log           logger.Logger
	paymentGetter paymentGetter
}

func New(log logger.Logger, paymentGetter paymentGetter) *PaymentGetService {
	return &PaymentGetService{
		log:           log,
		paymentGetter: paymentGetter,
	}
}

// Payment returns the record together with its outcomes and derived status.
func (ps *PaymentGetService) Payment(ctx context.Context, authorizationID string) (*models.PaymentView, error) {
	const op = "services.payment.get.Payment"

	payment, err := ps.paymentGetter.ByAuthorizationID(ctx, authorizationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	outcomes, err := ps.paymentGetter.Outcomes(ctx, authorizationID)
	if err != nil {
		ps.log.ErrorContext(ctx, op, logger.String("authorization_id", authorizationID), logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	view := models.NewPaymentView(*payment, outcomes)

	return &view, nil
}
