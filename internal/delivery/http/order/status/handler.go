package status

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	httpresponse "github.com/tumbleweedd/order_pipeline/internal/lib/http"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type orderStatusUpdater interface {
	UpdateStatus(ctx context.Context, orderUUID uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type Handler struct {
	log logger.Logger

	updater orderStatusUpdater
}

func NewHandler(log logger.Logger, updater orderStatusUpdater) *Handler {
	return &Handler{
		log:     log,
		updater: updater,
	}
}

// Update serves PUT /{orderId}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.status.Update"

	raw := chi.URLParam(r, "orderId")
	orderUUID, err := uuid.Parse(raw)
	if err != nil {
		httpresponse.WriteError(w, fmt.Errorf("%w: %q is not an order id", internalErrors.ErrOrderNotFound, raw))
		return
	}

	var request UpdateStatusRequest
	if err = httpresponse.Bind(r, &request); err != nil {
		httpresponse.WriteError(w, err)
		return
	}

	order, err := h.updater.UpdateStatus(r.Context(), orderUUID, request.Status)
	if err != nil {
		if status := httpresponse.WriteError(w, err); status == http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), op, logger.Err(err))
		}
		return
	}

	if err = httpresponse.WriteJSON(w, http.StatusOK, order); err != nil {
		h.log.ErrorContext(r.Context(), op, logger.String("message", "failed to encode response"), logger.Err(err))
	}
}
