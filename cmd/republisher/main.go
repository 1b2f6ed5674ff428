package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tumbleweedd/order_pipeline/internal/app"
	"github.com/tumbleweedd/order_pipeline/internal/config"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const serviceName = "republisher"

func main() {
	var every time.Duration
	flag.DurationVar(&every, "every", 0, "repeat at this interval instead of running once")

	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env)).With(logger.String("service", serviceName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	m, flushMetrics, err := app.SetupMetrics(ctx, &cfg, serviceName)
	if err != nil {
		panic(fmt.Sprintf("failed to set up metrics: %v", err))
	}
	defer func() { _ = flushMetrics(context.Background()) }()

	republisher, err := app.NewRepublisher(ctx, log, &cfg, m)
	if err != nil {
		panic(fmt.Sprintf("failed to create republisher: %v", err))
	}
	defer republisher.Close()

	if every <= 0 {
		if !runOnce(ctx, log, republisher) {
			republisher.Close()
			os.Exit(1)
		}
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		runOnce(ctx, log, republisher)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func runOnce(ctx context.Context, log logger.Logger, republisher *app.Republisher) bool {
	sent, err := republisher.RunOnce(ctx)
	if err != nil {
		log.Error("republish finished with errors", logger.Int("sent", sent), logger.Err(err))
		return false
	}

	log.Info("republish finished", logger.Int("sent", sent))

	return true
}
