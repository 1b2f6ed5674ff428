package get

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
)

const defaultPendingAge = 5 * time.Minute

// orderUUIDParam reports ErrOrderNotFound for ids that are not uuids, since no
// such order can exist.
func orderUUIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "orderId")

	orderUUID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q is not an order id", internalErrors.ErrOrderNotFound, raw)
	}

	return orderUUID, nil
}

func pendingAgeParam(r *http.Request) (time.Duration, error) {
	raw := r.URL.Query().Get("older_than")
	if raw == "" {
		return defaultPendingAge, nil
	}

	age, err := time.ParseDuration(raw)
	if err != nil {
		return 0, internalErrors.WithDetail(internalErrors.ErrValidation, "older_than must be a duration such as 10m")
	}

	return age, nil
}
