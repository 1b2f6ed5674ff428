package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/order_pipeline/internal/config"
)

func TestSetupWithoutExporter(t *testing.T) {
	ctx := context.Background()

	mp, err := Setup(ctx, config.TelemetryConfig{ServiceName: "order_service"}, "local")
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	counter, err := mp.Meter("test").Int64Counter("probe_total")
	require.NoError(t, err)
	counter.Add(ctx, 1)
}
