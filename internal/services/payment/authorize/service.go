package authorize

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type authorizer interface {
	Authorize(ctx context.Context, orderUUID uuid.UUID, amount int64, currency string) (models.Authorization, error)
}

type paymentCreator interface {
	Create(ctx context.Context, payment models.Payment) error
}

type failureRecorder interface {
	RecordAuthorizationFailure(ctx context.Context)
}

type Result struct {
	ClientSecret    string `json:"clientSecret"`
	AuthorizationID string `json:"authorizationId"`
}

type AuthorizationService struct {
	log     logger.Logger
	metrics failureRecorder
	now     func() time.Time

	processor      authorizer
	paymentCreator paymentCreator
}

func New(
	log logger.Logger,
	processor authorizer,
	paymentCreator paymentCreator,
	metrics failureRecorder,
) *AuthorizationService {
	return &AuthorizationService{
		log:            log,
		metrics:        metrics,
		now:            time.Now,
		processor:      processor,
		paymentCreator: paymentCreator,
	}
}

// CreateAuthorization opens a payment attempt at the processor and stores the
// payment record. Nothing is stored when the processor refuses.
func (as *AuthorizationService) CreateAuthorization(
	ctx context.Context,
	orderID string,
	amount int64,
	currency string,
) (*Result, error) {
	const op = "services.payment.authorize.CreateAuthorization"

	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.WithDetail(internalErrors.ErrValidation, "orderId must be a uuid"))
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.WithDetail(internalErrors.ErrValidation, "amount must be positive"))
	}
	if !isCurrencyCode(currency) {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.WithDetail(internalErrors.ErrValidation, "currency must be a 3-letter code"))
	}
	currency = strings.ToLower(currency)

	auth, err := as.processor.Authorize(ctx, orderUUID, amount, currency)
	if err != nil {
		as.log.ErrorContext(ctx, op,
			logger.String("order_uuid", orderUUID.String()),
			logger.Err(err),
		)
		as.metrics.RecordAuthorizationFailure(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	payment := models.Payment{
		AuthorizationID: auth.ID,
		OrderUUID:       orderUUID,
		Status:          auth.Status,
		Amount:          amount,
		Currency:        currency,
		CreatedAt:       models.Timestamp(as.now()),
	}

	if err = as.paymentCreator.Create(ctx, payment); err != nil {
		as.log.ErrorContext(ctx, op,
			logger.String("authorization_id", auth.ID),
			logger.String("message", "authorization created but payment record not stored"),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	as.log.InfoContext(ctx, op,
		logger.String("order_uuid", orderUUID.String()),
		logger.String("authorization_id", auth.ID),
	)

	return &Result{ClientSecret: auth.ClientSecret, AuthorizationID: auth.ID}, nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
