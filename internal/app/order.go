package app

import (
	"context"
	"fmt"

	httpapp "github.com/tumbleweedd/order_pipeline/internal/app/http"
	"github.com/tumbleweedd/order_pipeline/internal/cache_impl"
	"github.com/tumbleweedd/order_pipeline/internal/config"
	httpdelivery "github.com/tumbleweedd/order_pipeline/internal/delivery/http"
	createHandler "github.com/tumbleweedd/order_pipeline/internal/delivery/http/order/create"
	getHandler "github.com/tumbleweedd/order_pipeline/internal/delivery/http/order/get"
	statusHandler "github.com/tumbleweedd/order_pipeline/internal/delivery/http/order/status"
	"github.com/tumbleweedd/order_pipeline/internal/metrics"
	orderCreationService "github.com/tumbleweedd/order_pipeline/internal/services/order/create"
	orderRetrievalService "github.com/tumbleweedd/order_pipeline/internal/services/order/get"
	orderStatusService "github.com/tumbleweedd/order_pipeline/internal/services/order/status"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func NewOrderApp(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
	m *metrics.Metrics,
	opts ...Option,
) (*App, error) {
	const op = "app.NewOrderApp"

	o := applyOptions(opts)
	a := newApp(log, cfg.HTTP.ShutdownTimeout)
	checks := make(map[string]httpdelivery.Check)

	repo, err := a.orderRepository(ctx, cfg, checks)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bus := a.bus(log, cfg, m, o, checks)
	cache := cache_impl.NewOrderCache(cfg.Cache.Size, cfg.Cache.TTL)

	orderCreationSvc := orderCreationService.New(log, cache, repo, bus, m, orderCreationService.Config{
		Topic:          cfg.Kafka.OrderEventTopic,
		PublishTimeout: cfg.Kafka.PublishTimeout,
	})
	orderRetrievalSvc := orderRetrievalService.New(log, cache, repo)
	orderStatusSvc := orderStatusService.New(log, cache, repo, m)

	router := httpdelivery.NewOrderRouter(log, httpdelivery.OrderHandlers{
		Create: createHandler.NewHandler(log, orderCreationSvc),
		Get:    getHandler.NewHandler(log, orderRetrievalSvc),
		Status: statusHandler.NewHandler(log, orderStatusSvc),
	}, checks)

	a.HTTPServer = httpapp.NewApp(log, "order_service", router, cfg.HTTP)

	return a, nil
}
