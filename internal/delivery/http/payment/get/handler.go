package get

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	httpresponse "github.com/tumbleweedd/order_pipeline/internal/lib/http"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type paymentGetter interface {
	Payment(ctx context.Context, authorizationID string) (*models.PaymentView, error)
}

type Handler struct {
	log logger.Logger

	paymentGetter paymentGetter
}

func NewHandler(log logger.Logger, paymentGetter paymentGetter) *Handler {
	return &Handler{
		log:           log,
		paymentGetter: paymentGetter,
	}
}

// Payment serves GET /{authorizationId}.
func (h *Handler) Payment(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.get.Payment"

	view, err := h.paymentGetter.Payment(r.Context(), chi.URLParam(r, "authorizationId"))
	if err != nil {
		if status := httpresponse.WriteError(w, err); status == http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), op, logger.Err(err))
		}
		return
	}

	if err = httpresponse.WriteJSON(w, http.StatusOK, view); err != nil {
		h.log.ErrorContext(r.Context(), op, logger.String("message", "failed to encode response"), logger.Err(err))
	}
}
