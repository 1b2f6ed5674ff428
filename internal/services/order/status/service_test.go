package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/order_pipeline/internal/cache_impl"
	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/internal/metrics"
	"github.com/tumbleweedd/order_pipeline/internal/repository/memory"
	repoMocks "github.com/tumbleweedd/order_pipeline/internal/repository/mocks"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func TestUpdateStatus(t *testing.T) {
	orderUUID := uuid.New()

	type mockBehavior func(repo *repoMocks.MockOrderStatusUpdater)

	tCases := []struct {
		name         string
		status       models.OrderStatus
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name:   "complete pending order",
			status: models.OrderStatusCompleted,
			mockBehavior: func(repo *repoMocks.MockOrderStatusUpdater) {
				repo.EXPECT().
					UpdateStatus(gomock.Any(), orderUUID, models.OrderStatusCompleted, gomock.Any()).
					Return(&models.Order{OrderUUID: orderUUID, Status: models.OrderStatusCompleted}, nil)
			},
		},
		{
			name:   "cancel pending order",
			status: models.OrderStatusCancelled,
			mockBehavior: func(repo *repoMocks.MockOrderStatusUpdater) {
				repo.EXPECT().
					UpdateStatus(gomock.Any(), orderUUID, models.OrderStatusCancelled, gomock.Any()).
					Return(&models.Order{OrderUUID: orderUUID, Status: models.OrderStatusCancelled}, nil)
			},
		},
		{
			name:   "back to pending",
			status: models.OrderStatusPending,
			mockBehavior: func(repo *repoMocks.MockOrderStatusUpdater) {
				repo.EXPECT().
					UpdateStatus(gomock.Any(), orderUUID, models.OrderStatusPending, gomock.Any()).
					Return(nil, internalErrors.ErrInvalidTransition)
			},
			wantErr: internalErrors.ErrInvalidTransition,
		},
		{
			name:         "unknown status",
			status:       "shipped",
			mockBehavior: func(*repoMocks.MockOrderStatusUpdater) {},
			wantErr:      internalErrors.ErrValidation,
		},
		{
			name:   "terminal order",
			status: models.OrderStatusCancelled,
			mockBehavior: func(repo *repoMocks.MockOrderStatusUpdater) {
				repo.EXPECT().
					UpdateStatus(gomock.Any(), orderUUID, models.OrderStatusCancelled, gomock.Any()).
					Return(nil, internalErrors.ErrInvalidTransition)
			},
			wantErr: internalErrors.ErrInvalidTransition,
		},
		{
			name:   "missing order",
			status: models.OrderStatusCompleted,
			mockBehavior: func(repo *repoMocks.MockOrderStatusUpdater) {
				repo.EXPECT().
					UpdateStatus(gomock.Any(), orderUUID, models.OrderStatusCompleted, gomock.Any()).
					Return(nil, internalErrors.ErrOrderNotFound)
			},
			wantErr: internalErrors.ErrOrderNotFound,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			repo := repoMocks.NewMockOrderStatusUpdater(ctl)
			cache := cache_impl.NewOrderCache(16, time.Minute)

			tCase.mockBehavior(repo)

			svc := New(logger.NewDiscard(), cache, repo, metrics.NewNoop())

			order, err := svc.UpdateStatus(context.Background(), orderUUID, tCase.status)
			if tCase.wantErr != nil {
				require.True(t, errors.Is(err, tCase.wantErr), "got %v", err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tCase.status, order.Status)

			cached, ok := cache.Get(orderUUID)
			require.True(t, ok)
			require.Equal(t, tCase.status, cached.Status)
		})
	}
}

func TestUpdateStatusDropsStaleCacheEntry(t *testing.T) {
	ctl := gomock.NewController(t)
	repo := repoMocks.NewMockOrderStatusUpdater(ctl)
	cache := cache_impl.NewOrderCache(16, time.Minute)

	orderUUID := uuid.New()
	cache.Add(orderUUID, &models.Order{OrderUUID: orderUUID, Status: models.OrderStatusPending})

	repo.EXPECT().UpdateStatus(gomock.Any(), orderUUID, models.OrderStatusCompleted, gomock.Any()).
		Return(nil, internalErrors.ErrInvalidTransition)

	svc := New(logger.NewDiscard(), cache, repo, metrics.NewNoop())

	_, err := svc.UpdateStatus(context.Background(), orderUUID, models.OrderStatusCompleted)
	require.ErrorIs(t, err, internalErrors.ErrInvalidTransition)

	_, ok := cache.Get(orderUUID)
	require.False(t, ok)
}

func TestUpdateStatusReportsMissingOrderFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	svc := New(logger.NewDiscard(), cache_impl.NewOrderCache(16, time.Minute), repo, metrics.NewNoop())

	_, err := svc.UpdateStatus(ctx, uuid.New(), models.OrderStatusPending)
	require.ErrorIs(t, err, internalErrors.ErrOrderNotFound)

	order, err := models.NewOrder("u1", "p1", 1, decimal.RequireFromString("10"), time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, order))

	_, err = svc.UpdateStatus(ctx, order.OrderUUID, models.OrderStatusPending)
	require.ErrorIs(t, err, internalErrors.ErrInvalidTransition)
}
