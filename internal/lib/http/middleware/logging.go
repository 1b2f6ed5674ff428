package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

// Logging writes one line when a request arrives and one when it completes.
func Logging(log logger.Logger) func(http.Handler) http.Handler {
	const op = "http.middleware.Logging"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.InfoContext(r.Context(), op,
				logger.String("message", "incoming request"),
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("request_id", chimiddleware.GetReqID(r.Context())),
			)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.DebugContext(r.Context(), op,
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.Int("status", ww.Status()),
				logger.Int("bytes", ww.BytesWritten()),
				logger.String("duration", time.Since(start).String()),
			)
		})
	}
}
