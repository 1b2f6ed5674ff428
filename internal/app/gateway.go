package app

import (
	"fmt"

	httpapp "github.com/tumbleweedd/order_pipeline/internal/app/http"
	"github.com/tumbleweedd/order_pipeline/internal/config"
	httpdelivery "github.com/tumbleweedd/order_pipeline/internal/delivery/http"
	"github.com/tumbleweedd/order_pipeline/internal/gateway"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func NewGatewayApp(log logger.Logger, cfg *config.Config) (*App, error) {
	const op = "app.NewGatewayApp"

	g, err := gateway.New(log, cfg.Gateway.Routes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := newApp(log, cfg.HTTP.ShutdownTimeout)
	a.HTTPServer = httpapp.NewApp(log, "gateway", httpdelivery.NewGatewayRouter(log, g), cfg.HTTP)

	return a, nil
}
