package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/tumbleweedd/order_pipeline/internal/config"
	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const (
	orderIDMetadataKey = "order_id"

	eventPaymentIntentSucceeded = "payment_intent.succeeded"
	eventPaymentIntentFailed    = "payment_intent.payment_failed"
)

// Processor creates payment intents and verifies webhook deliveries.
type Processor struct {
	log           logger.Logger
	api           *client.API
	webhookSecret string
	timeout       time.Duration
}

func New(log logger.Logger, cfg config.ProcessorConfig) *Processor {
	return NewWithBackend(log, cfg, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.Timeout},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}))
}

// NewWithBackend lets tests point the processor at a local server.
func NewWithBackend(log logger.Logger, cfg config.ProcessorConfig, backend stripe.Backend) *Processor {
	api := &client.API{}
	api.Init(cfg.SecretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	return &Processor{
		log:           log,
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		timeout:       cfg.Timeout,
	}
}

func (p *Processor) Authorize(
	ctx context.Context,
	orderUUID uuid.UUID,
	amount int64,
	currency string,
) (models.Authorization, error) {
	const op = "processor.stripe.Authorize"

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(orderIDMetadataKey, orderUUID.String())

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		p.log.ErrorContext(ctx, op, logger.String("order_uuid", orderUUID.String()), logger.Err(err))
		return models.Authorization{}, fmt.Errorf("%s: %w", op, classify(err))
	}

	return models.Authorization{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}, nil
}

// classify separates requests the processor rejected from the processor being
// unreachable or failing on its side.
func classify(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return fmt.Errorf("%w: %w", internalErrors.ErrUpstreamUnavailable, err)
	}

	if stripeErr.HTTPStatusCode >= http.StatusInternalServerError || stripeErr.Type == stripe.ErrorTypeAPI {
		return fmt.Errorf("%w: %s", internalErrors.ErrUpstreamUnavailable, stripeErr.Msg)
	}

	return fmt.Errorf("%w: %s", internalErrors.ErrProcessor, stripeErr.Msg)
}

// VerifyEvent checks the Stripe-Signature header and maps the event onto the
// processor-neutral callback shape.
func (p *Processor) VerifyEvent(payload []byte, signature string) (models.CallbackEvent, error) {
	const op = "processor.stripe.VerifyEvent"

	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return models.CallbackEvent{}, fmt.Errorf("%s: %w: %w", op, internalErrors.ErrSignatureVerification, err)
	}

	callback := models.CallbackEvent{
		ID:   event.ID,
		Type: models.CallbackEventType(event.Type),
	}

	switch string(event.Type) {
	case eventPaymentIntentSucceeded:
		callback.Type = models.CallbackAuthorizationSucceeded
	case eventPaymentIntentFailed:
		callback.Type = models.CallbackAuthorizationFailed
	default:
		return callback, nil
	}

	var intent stripe.PaymentIntent
	if err = json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return models.CallbackEvent{}, fmt.Errorf("%s: %w: decode payment intent: %w", op, internalErrors.ErrValidation, err)
	}

	callback.AuthorizationID = intent.ID
	// Intents created outside this service carry no order id; OrderUUID stays nil.
	if orderUUID, err := uuid.Parse(intent.Metadata[orderIDMetadataKey]); err == nil {
		callback.OrderUUID = orderUUID
	}
	callback.Amount = intent.Amount
	callback.Currency = string(intent.Currency)

	return callback, nil
}
