package create

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	httpresponse "github.com/tumbleweedd/order_pipeline/internal/lib/http"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type orderCreator interface {
	Create(
		ctx context.Context,
		userRef, productRef string,
		quantity int,
		totalAmount decimal.Decimal,
	) (*models.Order, error)
}

type Handler struct {
	log logger.Logger

	orderCreator orderCreator
}

func NewHandler(log logger.Logger, orderCreator orderCreator) *Handler {
	return &Handler{
		log:          log,
		orderCreator: orderCreator,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.create.Create"

	var request CreateOrderRequest
	if err := httpresponse.Bind(r, &request); err != nil {
		h.log.DebugContext(r.Context(), op, logger.Err(err))
		httpresponse.WriteError(w, err)
		return
	}

	order, err := h.orderCreator.Create(
		r.Context(),
		request.UserRef,
		request.ProductRef,
		request.Quantity,
		*request.TotalAmount,
	)
	if err != nil {
		if status := httpresponse.WriteError(w, err); status == http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), op, logger.Err(err))
		}
		return
	}

	if err = httpresponse.WriteJSON(w, http.StatusCreated, order); err != nil {
		h.log.ErrorContext(r.Context(), op, logger.String("message", "failed to encode response"), logger.Err(err))
	}
}
