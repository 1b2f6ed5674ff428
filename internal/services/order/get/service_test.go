package get

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/order_pipeline/internal/cache_impl"
	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	repoMocks "github.com/tumbleweedd/order_pipeline/internal/repository/mocks"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func TestOrderByUUIDUsesCache(t *testing.T) {
	ctl := gomock.NewController(t)
	repo := repoMocks.NewMockOrderGetter(ctl)
	cache := cache_impl.NewOrderCache(16, time.Minute)

	svc := New(logger.NewDiscard(), cache, repo)

	order := &models.Order{OrderUUID: uuid.New(), Status: models.OrderStatusPending}
	repo.EXPECT().Order(gomock.Any(), order.OrderUUID).Return(order, nil).Times(1)

	first, err := svc.OrderByUUID(context.Background(), order.OrderUUID)
	require.NoError(t, err)
	second, err := svc.OrderByUUID(context.Background(), order.OrderUUID)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestOrderByUUIDNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	repo := repoMocks.NewMockOrderGetter(ctl)

	svc := New(logger.NewDiscard(), cache_impl.NewOrderCache(16, time.Minute), repo)

	id := uuid.New()
	repo.EXPECT().Order(gomock.Any(), id).Return(nil, internalErrors.ErrOrderNotFound)

	_, err := svc.OrderByUUID(context.Background(), id)
	require.ErrorIs(t, err, internalErrors.ErrOrderNotFound)
}

func TestPendingOlderThan(t *testing.T) {
	ctl := gomock.NewController(t)
	repo := repoMocks.NewMockOrderGetter(ctl)

	svc := New(logger.NewDiscard(), cache_impl.NewOrderCache(16, time.Minute), repo)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	repo.EXPECT().PendingOlderThan(gomock.Any(), now.Add(-5*time.Minute)).Return([]models.Order{{}}, nil)

	orders, err := svc.PendingOlderThan(context.Background(), 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	_, err = svc.PendingOlderThan(context.Background(), -time.Second)
	require.ErrorIs(t, err, internalErrors.ErrValidation)
}
