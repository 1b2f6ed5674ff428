package webhook

import (
	"context"
	"io"
	"net/http"

	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	httpresponse "github.com/tumbleweedd/order_pipeline/internal/lib/http"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const (
	signatureHeader = "Stripe-Signature"
	maxPayloadBytes = 65536
)

type callbackHandler interface {
	HandleCallback(ctx context.Context, payload []byte, signature string) error
}

type Handler struct {
	log logger.Logger

	callbacks callbackHandler
}

func NewHandler(log logger.Logger, callbacks callbackHandler) *Handler {
	return &Handler{
		log:       log,
		callbacks: callbacks,
	}
}

// Receive serves POST /webhook. The body is passed on untouched since the
// signature covers the exact bytes.
func (h *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.webhook.Receive"

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		httpresponse.WriteError(w, internalErrors.WithDetail(internalErrors.ErrValidation, "unreadable body"))
		return
	}

	if err = h.callbacks.HandleCallback(r.Context(), payload, r.Header.Get(signatureHeader)); err != nil {
		if status := httpresponse.WriteError(w, err); status >= http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), op, logger.Err(err))
		}
		return
	}

	_ = httpresponse.WriteJSON(w, http.StatusOK, httpresponse.H{"received": true})
}
