package httpdelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tumbleweedd/order_pipeline/internal/delivery/http/order/create"
	"github.com/tumbleweedd/order_pipeline/internal/delivery/http/order/get"
	"github.com/tumbleweedd/order_pipeline/internal/delivery/http/order/status"
	"github.com/tumbleweedd/order_pipeline/internal/delivery/http/payment/authorize"
	paymentGet "github.com/tumbleweedd/order_pipeline/internal/delivery/http/payment/get"
	"github.com/tumbleweedd/order_pipeline/internal/delivery/http/payment/webhook"
	httpresponse "github.com/tumbleweedd/order_pipeline/internal/lib/http"
	"github.com/tumbleweedd/order_pipeline/internal/lib/http/middleware"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const readinessTimeout = 3 * time.Second

// Check is one readiness dependency, such as a database ping.
type Check func(ctx context.Context) error

type OrderHandlers struct {
	Create *create.Handler
	Get    *get.Handler
	Status *status.Handler
}

type PaymentHandlers struct {
	Authorize *authorize.Handler
	Webhook   *webhook.Handler
	Get       *paymentGet.Handler
}

func NewOrderRouter(log logger.Logger, h OrderHandlers, checks map[string]Check) http.Handler {
	mux := newBaseRouter(log, checks)

	mux.Post("/", h.Create.Create)
	mux.Get("/", h.Get.Orders)
	mux.Get("/pending", h.Get.Pending)
	mux.Get("/{orderId}", h.Get.Order)
	mux.Put("/{orderId}", h.Status.Update)

	return mux
}

func NewPaymentRouter(log logger.Logger, h PaymentHandlers, checks map[string]Check) http.Handler {
	mux := newBaseRouter(log, checks)

	mux.Post("/", h.Authorize.Authorize)
	mux.Post("/webhook", h.Webhook.Receive)
	mux.Get("/{authorizationId}", h.Get.Payment)

	return mux
}

// NewGatewayRouter answers health probes itself and hands every other path to gateway.
func NewGatewayRouter(log logger.Logger, gateway http.Handler) http.Handler {
	mux := newBaseRouter(log, nil)
	mux.Handle("/*", gateway)

	return mux
}

func newBaseRouter(log logger.Logger, checks map[string]Check) chi.Router {
	mux := chi.NewRouter()

	mux.Use(chimiddleware.RequestID)
	mux.Use(middleware.Logging(log))
	mux.Use(chimiddleware.Recoverer)

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpresponse.WriteMessage(w, http.StatusNotFound, "route not found")
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httpresponse.WriteMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_ = httpresponse.WriteJSON(w, http.StatusOK, httpresponse.H{"status": "ok"})
	})
	mux.Get("/readyz", readiness(log, checks))

	return mux
}

func readiness(log logger.Logger, checks map[string]Check) http.HandlerFunc {
	const op = "delivery.http.readiness"

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		failed := make(map[string]string)
		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.WarnContext(ctx, op, logger.String("check", name), logger.Err(err))
				failed[name] = "unavailable"
			}
		}

		if len(failed) > 0 {
			_ = httpresponse.WriteJSON(w, http.StatusServiceUnavailable, httpresponse.H{"status": "unavailable", "checks": failed})
			return
		}

		_ = httpresponse.WriteJSON(w, http.StatusOK, httpresponse.H{"status": "ok"})
	}
}
