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

func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env)).With(logger.String("service", "gateway"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application, err := app.NewGatewayApp(log, &cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create gateway: %v", err))
	}

	if err = application.Run(ctx); err != nil {
		log.Error("gateway stopped with error", logger.Err(err))
		os.Exit(1)
	}
}
