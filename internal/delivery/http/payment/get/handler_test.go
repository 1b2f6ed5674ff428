package get

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	"github.com/tumbleweedd/order_pipeline/internal/repository/memory"
	paymentRetrievalService "github.com/tumbleweedd/order_pipeline/internal/services/payment/get"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func TestPayment(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPaymentRepository()

	payment := models.Payment{
		AuthorizationID: "pi_1",
		OrderUUID:       uuid.New(),
		Status:          "requires_payment_method",
		Amount:          4000,
		Currency:        "usd",
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, payment))

	_, err := repo.AppendOutcome(ctx, models.PaymentOutcome{
		AuthorizationID: "pi_1",
		EventID:         "evt_1",
		EventType:       models.CallbackAuthorizationFailed,
		OrderUUID:       payment.OrderUUID,
		Result:          models.OutcomeOrderLeftPending,
		CreatedAt:       time.Now().UTC(),
	})
	require.NoError(t, err)

	h := NewHandler(logger.NewDiscard(), paymentRetrievalService.New(logger.NewDiscard(), repo))
	router := chi.NewRouter()
	router.Get("/{authorizationId}", h.Payment)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pi_1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var view models.PaymentView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	require.Equal(t, "failed", view.CurrentStatus)
	require.Len(t, view.Outcomes, 1)
	require.EqualValues(t, 4000, view.Payment.Amount)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pi_missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"message":"payment not found"}`, rec.Body.String())
}
