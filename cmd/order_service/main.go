package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tumbleweedd/order_pipeline/internal/app"
	"github.com/tumbleweedd/order_pipeline/internal/config"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const serviceName = "order_service"

func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env)).With(logger.String("service", serviceName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	m, flushMetrics, err := app.SetupMetrics(ctx, &cfg, serviceName)
	if err != nil {
		panic(fmt.Sprintf("failed to set up metrics: %v", err))
	}
	defer func() { _ = flushMetrics(context.Background()) }()

	application, err := app.NewOrderApp(ctx, log, &cfg, m)
	if err != nil {
		panic(fmt.Sprintf("failed to create app: %v", err))
	}

	if err = application.Run(ctx); err != nil {
		log.Error("application stopped with error", logger.Err(err))
		os.Exit(1)
	}
}
