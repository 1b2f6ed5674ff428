package app

import (
	"context"
	"fmt"

	httpapp "github.com/tumbleweedd/order_pipeline/internal/app/http"
	"github.com/tumbleweedd/order_pipeline/internal/clients/orders"
	"github.com/tumbleweedd/order_pipeline/internal/config"
	"github.com/tumbleweedd/order_pipeline/internal/delivery/broker/ordercreated"
	httpdelivery "github.com/tumbleweedd/order_pipeline/internal/delivery/http"
	authorizeHandler "github.com/tumbleweedd/order_pipeline/internal/delivery/http/payment/authorize"
	paymentGetHandler "github.com/tumbleweedd/order_pipeline/internal/delivery/http/payment/get"
	webhookHandler "github.com/tumbleweedd/order_pipeline/internal/delivery/http/payment/webhook"
	"github.com/tumbleweedd/order_pipeline/internal/metrics"
	"github.com/tumbleweedd/order_pipeline/internal/processor/stripe"
	paymentAuthorizationService "github.com/tumbleweedd/order_pipeline/internal/services/payment/authorize"
	paymentCallbackService "github.com/tumbleweedd/order_pipeline/internal/services/payment/callback"
	orderEventsService "github.com/tumbleweedd/order_pipeline/internal/services/payment/events"
	paymentRetrievalService "github.com/tumbleweedd/order_pipeline/internal/services/payment/get"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func NewPaymentApp(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
	m *metrics.Metrics,
	opts ...Option,
) (*App, error) {
	const op = "app.NewPaymentApp"

	o := applyOptions(opts)
	a := newApp(log, cfg.HTTP.ShutdownTimeout)
	checks := make(map[string]httpdelivery.Check)

	repo := o.paymentRepo
	if repo == nil {
		var err error
		if repo, err = a.paymentRepository(ctx, cfg, checks); err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	bus := a.bus(log, cfg, m, o, checks)
	processor := stripe.New(log, cfg.Processor)
	if o.processorBackend != nil {
		processor = stripe.NewWithBackend(log, cfg.Processor, o.processorBackend)
	}
	ordersClient := orders.New(log, cfg.OrdersClient)

	authorizationSvc := paymentAuthorizationService.New(log, processor, repo, m)
	callbackSvc := paymentCallbackService.New(log, processor, repo, ordersClient, m)
	retrievalSvc := paymentRetrievalService.New(log, repo)
	eventsSvc := orderEventsService.New(log, repo)

	router := httpdelivery.NewPaymentRouter(log, httpdelivery.PaymentHandlers{
		Authorize: authorizeHandler.NewHandler(log, authorizationSvc),
		Webhook:   webhookHandler.NewHandler(log, callbackSvc),
		Get:       paymentGetHandler.NewHandler(log, retrievalSvc),
	}, checks)

	a.HTTPServer = httpapp.NewApp(log, "payment_service", router, cfg.HTTP)

	consumer := ordercreated.NewConsumer(log, cfg.Kafka.OrderEventTopic, bus, eventsSvc)
	a.workers = append(a.workers, consumer.Run)

	return a, nil
}
