package app

import (
	"context"
	"fmt"

	"github.com/tumbleweedd/order_pipeline/internal/config"
	"github.com/tumbleweedd/order_pipeline/internal/metrics"
	"github.com/tumbleweedd/order_pipeline/internal/telemetry"
)

// SetupMetrics installs the meter provider for service and returns its
// instruments together with a flush function for shutdown.
func SetupMetrics(ctx context.Context, cfg *config.Config, service string) (*metrics.Metrics, func(context.Context) error, error) {
	const op = "app.SetupMetrics"

	telemetryCfg := cfg.Telemetry
	if telemetryCfg.ServiceName == "" {
		telemetryCfg.ServiceName = service
	}

	provider, err := telemetry.Setup(ctx, telemetryCfg, cfg.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	m, err := metrics.NewMetrics(provider.Meter(service))
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, provider.Shutdown, nil
}
