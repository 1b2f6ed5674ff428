package get

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	httpresponse "github.com/tumbleweedd/order_pipeline/internal/lib/http"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

type orderGetter interface {
	OrderByUUID(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)
	PendingOlderThan(ctx context.Context, age time.Duration) ([]models.Order, error)
}

type Handler struct {
	log logger.Logger

	orderGetter orderGetter
}

func NewHandler(log logger.Logger, orderGetter orderGetter) *Handler {
	return &Handler{
		log:         log,
		orderGetter: orderGetter,
	}
}

func (h *Handler) Order(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.get.Order"

	orderUUID, err := orderUUIDParam(r)
	if err != nil {
		httpresponse.WriteError(w, err)
		return
	}

	order, err := h.orderGetter.OrderByUUID(r.Context(), orderUUID)
	if err != nil {
		h.writeError(r.Context(), w, op, err)
		return
	}

	h.writeJSON(r.Context(), w, op, order)
}

func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.get.Orders"

	orders, err := h.orderGetter.Orders(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, op, err)
		return
	}

	h.writeJSON(r.Context(), w, op, orders)
}

// Pending serves GET /pending?older_than=<duration>.
func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.get.Pending"

	age, err := pendingAgeParam(r)
	if err != nil {
		httpresponse.WriteError(w, err)
		return
	}

	orders, err := h.orderGetter.PendingOlderThan(r.Context(), age)
	if err != nil {
		h.writeError(r.Context(), w, op, err)
		return
	}

	h.writeJSON(r.Context(), w, op, orders)
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if status := httpresponse.WriteError(w, err); status == http.StatusInternalServerError {
		h.log.ErrorContext(ctx, op, logger.Err(err))
	}
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, op string, payload any) {
	if err := httpresponse.WriteJSON(w, http.StatusOK, payload); err != nil {
		h.log.ErrorContext(ctx, op, logger.String("message", "failed to encode response"), logger.Err(err))
	}
}
