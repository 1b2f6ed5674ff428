package app

import (
	"context"
	"fmt"

	"github.com/tumbleweedd/order_pipeline/internal/config"
	httpdelivery "github.com/tumbleweedd/order_pipeline/internal/delivery/http"
	"github.com/tumbleweedd/order_pipeline/internal/metrics"
	"github.com/tumbleweedd/order_pipeline/internal/services/order/republish"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

// Republisher re-announces orders that stayed pending, for consumers that
// missed the original event.
type Republisher struct {
	app     *App
	service *republish.Service
	cfg     config.RepublisherConfig
}

func NewRepublisher(ctx context.Context, log logger.Logger, cfg *config.Config, m *metrics.Metrics) (*Republisher, error) {
	const op = "app.NewRepublisher"

	a := newApp(log, cfg.HTTP.ShutdownTimeout)
	checks := make(map[string]httpdelivery.Check)

	repo, err := a.orderRepository(ctx, cfg, checks)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bus := a.bus(log, cfg, m, options{}, checks)

	return &Republisher{
		app:     a,
		service: republish.New(log, cfg.Kafka.OrderEventTopic, cfg.Kafka.PublishTimeout, repo, bus, m),
		cfg:     cfg.Republisher,
	}, nil
}

func (r *Republisher) RunOnce(ctx context.Context) (int, error) {
	return r.service.Republish(ctx, r.cfg.OlderThan)
}

func (r *Republisher) Close() {
	r.app.close()
}
