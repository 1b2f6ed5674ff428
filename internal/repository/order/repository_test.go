//go:build integration

package order_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/internal/repository/order"
	"github.com/tumbleweedd/order_pipeline/internal/testutil/pgtest"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func newOrder(t *testing.T, createdAt time.Time) *models.Order {
	t.Helper()

	o, err := models.NewOrder("u1", "p1", 2, decimal.RequireFromString("40.00"), createdAt)
	require.NoError(t, err)

	return o
}

func requireSameJSON(t *testing.T, want, got *models.Order) {
	t.Helper()

	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)

	require.JSONEq(t, string(wantJSON), string(gotJSON))
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := order.NewOrderRepository(logger.NewDiscard(), pgtest.Start(t, "order"))

	t.Run("create and read back", func(t *testing.T) {
		o := newOrder(t, time.Date(2026, 10, 15, 12, 30, 0, 123456789, time.FixedZone("MSK", 3*60*60)))
		require.NoError(t, repo.Create(ctx, o))

		got, err := repo.Order(ctx, o.OrderUUID)
		require.NoError(t, err)
		require.Equal(t, models.OrderStatusPending, got.Status)
		require.Equal(t, 2, got.Quantity)
		require.Equal(t, o.CreatedAt, got.CreatedAt)
		require.Equal(t, o.UpdatedAt, got.UpdatedAt)
		requireSameJSON(t, o, got)

		updated, err := repo.UpdateStatus(ctx, o.OrderUUID, models.OrderStatusCompleted, time.Now())
		require.NoError(t, err)

		got, err = repo.Order(ctx, o.OrderUUID)
		require.NoError(t, err)
		require.Equal(t, updated.UpdatedAt, got.UpdatedAt)
		requireSameJSON(t, updated, got)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := repo.Order(ctx, uuid.New())
		require.ErrorIs(t, err, internalErrors.ErrOrderNotFound)

		_, err = repo.UpdateStatus(ctx, uuid.New(), models.OrderStatusCompleted, time.Now())
		require.ErrorIs(t, err, internalErrors.ErrOrderNotFound)
	})

	t.Run("terminal order rejects transition", func(t *testing.T) {
		o := newOrder(t, time.Now())
		require.NoError(t, repo.Create(ctx, o))

		updated, err := repo.UpdateStatus(ctx, o.OrderUUID, models.OrderStatusCancelled, time.Now())
		require.NoError(t, err)
		require.Equal(t, models.OrderStatusCancelled, updated.Status)

		_, err = repo.UpdateStatus(ctx, o.OrderUUID, models.OrderStatusCompleted, time.Now())
		require.ErrorIs(t, err, internalErrors.ErrInvalidTransition)
	})

	t.Run("concurrent transitions have one winner", func(t *testing.T) {
		o := newOrder(t, time.Now())
		require.NoError(t, repo.Create(ctx, o))

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.UpdateStatus(ctx, o.OrderUUID, models.OrderStatusCompleted, time.Now()); err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		require.Equal(t, 1, succeeded)
	})

	t.Run("pending older than", func(t *testing.T) {
		old := newOrder(t, time.Now().Add(-48*time.Hour))
		require.NoError(t, repo.Create(ctx, old))

		pending, err := repo.PendingOlderThan(ctx, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		require.Len(t, pending, 1)
		require.Equal(t, old.OrderUUID, pending[0].OrderUUID)

		all, err := repo.Orders(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(all), 4)
	})
}
