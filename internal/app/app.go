package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"golang.org/x/sync/errgroup"

	httpapp "github.com/tumbleweedd/order_pipeline/internal/app/http"
	"github.com/tumbleweedd/order_pipeline/internal/repository"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const defaultShutdownTimeout = 10 * time.Second

// App is one service process: an HTTP server plus optional background workers.
type App struct {
	log             logger.Logger
	HTTPServer      *httpapp.App
	shutdownTimeout time.Duration

	workers []func(ctx context.Context) error
	closers []func() error
}

type options struct {
	bus EventBus

	paymentRepo      repository.PaymentRepository
	processorBackend stripe.Backend
}

type Option func(*options)

// WithBus makes the app use bus instead of building one from config. The
// caller keeps ownership and closes it.
func WithBus(bus EventBus) Option {
	return func(o *options) {
		o.bus = bus
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func newApp(log logger.Logger, shutdownTimeout time.Duration) *App {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &App{
		log:             log,
		shutdownTimeout: shutdownTimeout,
	}
}

// Run serves until ctx is cancelled or a component fails, then shuts down the
// server and releases every resource.
func (a *App) Run(ctx context.Context) error {
	const op = "app.Run"

	defer a.close()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(a.HTTPServer.Run)

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), a.shutdownTimeout)
		defer cancel()

		return a.HTTPServer.Stop(shutdownCtx)
	})

	for _, worker := range a.workers {
		g.Go(func() error {
			return worker(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.log.Info(op, logger.String("message", "application stopped"))

	return nil
}

func (a *App) addCloser(fn func() error) {
	a.closers = append(a.closers, fn)
}

// close releases resources in reverse order of acquisition.
func (a *App) close() {
	const op = "app.close"

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		a.log.Error(op, logger.Err(err))
	}
}
