//go:build integration

package payment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
	"github.com/tumbleweedd/order_pipeline/internal/repository/payment"
	"github.com/tumbleweedd/order_pipeline/internal/testutil/pgtest"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := payment.NewPaymentRepository(logger.NewDiscard(), pgtest.Start(t, "payment"))

	orderUUID := uuid.New()
	p := models.Payment{
		AuthorizationID: "pi_123",
		OrderUUID:       orderUUID,
		Status:          "requires_payment_method",
		Amount:          4000,
		Currency:        "usd",
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("create and read back", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, p))

		got, err := repo.ByAuthorizationID(ctx, "pi_123")
		require.NoError(t, err)
		require.Equal(t, p.OrderUUID, got.OrderUUID)
		require.EqualValues(t, 4000, got.Amount)

		_, err = repo.ByAuthorizationID(ctx, "pi_missing")
		require.ErrorIs(t, err, internalErrors.ErrPaymentNotFound)
	})

	t.Run("outcome appended once per event type", func(t *testing.T) {
		outcome := models.PaymentOutcome{
			AuthorizationID: "pi_123",
			EventID:         "evt_1",
			EventType:       models.CallbackAuthorizationSucceeded,
			OrderUUID:       orderUUID,
			Result:          models.OutcomeOrderCompleted,
			CreatedAt:       time.Now().UTC(),
		}

		inserted, err := repo.AppendOutcome(ctx, outcome)
		require.NoError(t, err)
		require.True(t, inserted)

		outcome.EventID = "evt_2"
		inserted, err = repo.AppendOutcome(ctx, outcome)
		require.NoError(t, err)
		require.False(t, inserted)

		has, err := repo.HasOutcome(ctx, "pi_123", models.CallbackAuthorizationSucceeded)
		require.NoError(t, err)
		require.True(t, has)

		has, err = repo.HasOutcome(ctx, "pi_123", models.CallbackAuthorizationFailed)
		require.NoError(t, err)
		require.False(t, has)

		outcomes, err := repo.Outcomes(ctx, "pi_123")
		require.NoError(t, err)
		require.Len(t, outcomes, 1)
		require.Equal(t, "evt_1", outcomes[0].EventID)
	})

	t.Run("observed order recorded once", func(t *testing.T) {
		observed := models.ObservedOrder{
			OrderUUID:   orderUUID,
			EventUUID:   uuid.New(),
			TotalAmount: "40.00",
			ObservedAt:  time.Now().UTC(),
		}

		first, err := repo.RecordObserved(ctx, observed)
		require.NoError(t, err)
		require.True(t, first)

		second, err := repo.RecordObserved(ctx, observed)
		require.NoError(t, err)
		require.False(t, second)
	})
}
