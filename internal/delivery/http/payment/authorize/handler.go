package authorize

import (
	"context"
	"net/http"

	httpresponse "github.com/tumbleweedd/order_pipeline/internal/lib/http"
	paymentAuthorizationService "github.com/tumbleweedd/order_pipeline/internal/services/payment/authorize"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type authorizationCreator interface {
	CreateAuthorization(ctx context.Context, orderID string, amount int64, currency string) (*paymentAuthorizationService.Result, error)
}

type Handler struct {
	log logger.Logger

	creator authorizationCreator
}

func NewHandler(log logger.Logger, creator authorizationCreator) *Handler {
	return &Handler{
		log:     log,
		creator: creator,
	}
}

func (h *Handler) Authorize(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.authorize.Authorize"

	var request AuthorizeRequest
	if err := httpresponse.Bind(r, &request); err != nil {
		httpresponse.WriteError(w, err)
		return
	}

	result, err := h.creator.CreateAuthorization(r.Context(), request.OrderID, request.Amount, request.Currency)
	if err != nil {
		if status := httpresponse.WriteError(w, err); status == http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), op, logger.Err(err))
		}
		return
	}

	if err = httpresponse.WriteJSON(w, http.StatusCreated, result); err != nil {
		h.log.ErrorContext(r.Context(), op, logger.String("message", "failed to encode response"), logger.Err(err))
	}
}
