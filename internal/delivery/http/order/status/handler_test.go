package status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/order_pipeline/internal/cache_impl"
	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	"github.com/tumbleweedd/order_pipeline/internal/metrics"
	"github.com/tumbleweedd/order_pipeline/internal/repository/memory"
	orderStatusService "github.com/tumbleweedd/order_pipeline/internal/services/order/status"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func TestUpdate(t *testing.T) {
	repo := memory.NewOrderRepository()

	order, err := models.NewOrder("u1", "p1", 2, decimal.RequireFromString("40.00"), time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), order))

	svc := orderStatusService.New(logger.NewDiscard(), cache_impl.NewOrderCache(16, time.Minute), repo, metrics.NewNoop())
	h := NewHandler(logger.NewDiscard(), svc)

	router := chi.NewRouter()
	router.Put("/{orderId}", h.Update)

	id := order.OrderUUID.String()

	// Steps run in order against the same order.
	steps := []struct {
		name        string
		path        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{name: "unknown status", path: "/" + id, body: `{"status":"shipped"}`, wantStatus: http.StatusBadRequest},
		{name: "back to pending", path: "/" + id, body: `{"status":"pending"}`, wantStatus: http.StatusBadRequest},
		{name: "complete", path: "/" + id, body: `{"status":"completed"}`, wantStatus: http.StatusOK},
		{
			name:        "cancel completed order",
			path:        "/" + id,
			body:        `{"status":"cancelled"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid status transition: completed -> cancelled",
		},
		{name: "unknown order", path: "/7f1c0c2e-5d0b-4a53-9d36-3c0f1e0f8a11", body: `{"status":"completed"}`, wantStatus: http.StatusNotFound},
		{
			name:        "pending on unknown order",
			path:        "/7f1c0c2e-5d0b-4a53-9d36-3c0f1e0f8a11",
			body:        `{"status":"pending"}`,
			wantStatus:  http.StatusNotFound,
			wantMessage: "order not found",
		},
		{name: "not a uuid", path: "/abc", body: `{"status":"completed"}`, wantStatus: http.StatusNotFound, wantMessage: "order not found"},
	}

	for _, step := range steps {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, step.path, strings.NewReader(step.body)))

		require.Equal(t, step.wantStatus, rec.Code, step.name)

		if step.wantMessage != "" {
			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.Equal(t, step.wantMessage, body["message"], step.name)
		}
	}

	stored, err := repo.Order(context.Background(), order.OrderUUID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCompleted, stored.Status)
}
