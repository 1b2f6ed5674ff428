package republish

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	"github.com/tumbleweedd/order_pipeline/internal/metrics"
	repoMocks "github.com/tumbleweedd/order_pipeline/internal/repository/mocks"
	brokerMocks "github.com/tumbleweedd/order_pipeline/pkg/brokers/mocks"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func TestRepublish(t *testing.T) {
	ctl := gomock.NewController(t)
	repo := repoMocks.NewMockOrderGetter(ctl)
	publisher := brokerMocks.NewMockPublisher(ctl)

	svc := New(logger.NewDiscard(), "order_created", time.Second, repo, publisher, metrics.NewNoop())

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	stale := []models.Order{
		{OrderUUID: uuid.New(), Status: models.OrderStatusPending},
		{OrderUUID: uuid.New(), Status: models.OrderStatusPending},
		{OrderUUID: uuid.New(), Status: models.OrderStatusPending},
	}
	repo.EXPECT().PendingOlderThan(gomock.Any(), now.Add(-10*time.Minute)).Return(stale, nil)

	publisher.EXPECT().Publish(gomock.Any(), "order_created", stale[0].OrderUUID.String(), gomock.Any()).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), "order_created", stale[1].OrderUUID.String(), gomock.Any()).
		Return(errors.New("broker down"))
	publisher.EXPECT().Publish(gomock.Any(), "order_created", stale[2].OrderUUID.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, payload []byte) error {
			var event models.OrderCreatedEvent
			require.NoError(t, json.Unmarshal(payload, &event))
			require.Equal(t, stale[2].OrderUUID, event.OrderUUID)
			return nil
		})

	sent, err := svc.Republish(context.Background(), 10*time.Minute)
	require.Error(t, err)
	require.Equal(t, 2, sent)
}

func TestRepublishNothingPending(t *testing.T) {
	ctl := gomock.NewController(t)
	repo := repoMocks.NewMockOrderGetter(ctl)
	publisher := brokerMocks.NewMockPublisher(ctl)

	svc := New(logger.NewDiscard(), "order_created", time.Second, repo, publisher, metrics.NewNoop())

	repo.EXPECT().PendingOlderThan(gomock.Any(), gomock.Any()).Return(nil, nil)

	sent, err := svc.Republish(context.Background(), time.Minute)
	require.NoError(t, err)
	require.Zero(t, sent)
}
