package httpapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tumbleweedd/order_pipeline/internal/config"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const readHeaderTimeout = 5 * time.Second

type App struct {
	log        logger.Logger
	name       string
	httpServer *http.Server
	port       int
}

func NewApp(log logger.Logger, name string, handler http.Handler, cfg config.HTTPConfig) *App {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return &App{
		log:        log,
		name:       name,
		httpServer: httpServer,
		port:       cfg.Port,
	}
}

func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run blocks until the server stops. A server stopped through Stop returns nil.
func (a *App) Run() error {
	const op = "httpapp.Run"

	a.log.Info(op, logger.String("app", a.name), logger.Int("port", a.port), logger.String("message", "starting http server"))

	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %s: %w", op, a.name, err)
	}

	return nil
}

func (a *App) Stop(ctx context.Context) error {
	const op = "httpapp.Stop"

	a.log.Info(op, logger.String("app", a.name), logger.String("message", "stopping http server"))

	if err := a.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s: %s: %w", op, a.name, err)
	}

	return nil
}
