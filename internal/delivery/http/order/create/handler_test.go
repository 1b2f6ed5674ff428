package create

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/order_pipeline/internal/cache_impl"
	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	"github.com/tumbleweedd/order_pipeline/internal/metrics"
	"github.com/tumbleweedd/order_pipeline/internal/repository/memory"
	orderCreationService "github.com/tumbleweedd/order_pipeline/internal/services/order/create"
	brokerMocks "github.com/tumbleweedd/order_pipeline/pkg/brokers/mocks"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func TestCreate(t *testing.T) {
	type mockBehavior func(publisher *brokerMocks.MockPublisher)

	tCases := []struct {
		name         string
		reqBody      string
		mockBehavior mockBehavior
		wantStatus   int
		wantMessage  string
	}{
		{
			name:    "created",
			reqBody: `{"userRef":"u1","productRef":"p1","quantity":2,"totalAmount":"40.00"}`,
			mockBehavior: func(publisher *brokerMocks.MockPublisher) {
				publisher.EXPECT().Publish(gomock.Any(), "order_created", gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "numeric amount",
			reqBody:      `{"userRef":"u1","productRef":"p1","quantity":1,"totalAmount":12.5}`,
			mockBehavior: func(publisher *brokerMocks.MockPublisher) { publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil) },
			wantStatus:   http.StatusCreated,
		},
		{
			name:         "zero quantity",
			reqBody:      `{"userRef":"u1","productRef":"p1","quantity":0,"totalAmount":"40.00"}`,
			mockBehavior: func(*brokerMocks.MockPublisher) {},
			wantStatus:   http.StatusBadRequest,
			wantMessage:  "validation failed: quantity must be greater than 0",
		},
		{
			name:         "negative amount",
			reqBody:      `{"userRef":"u1","productRef":"p1","quantity":1,"totalAmount":"-1"}`,
			mockBehavior: func(*brokerMocks.MockPublisher) {},
			wantStatus:   http.StatusBadRequest,
			wantMessage:  "validation failed: totalAmount must not be negative",
		},
		{
			name:         "missing amount",
			reqBody:      `{"userRef":"u1","productRef":"p1","quantity":1}`,
			mockBehavior: func(*brokerMocks.MockPublisher) {},
			wantStatus:   http.StatusBadRequest,
			wantMessage:  "validation failed: totalAmount is required",
		},
		{
			name:         "malformed body",
			reqBody:      `{"userRef":`,
			mockBehavior: func(*brokerMocks.MockPublisher) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			publisher := brokerMocks.NewMockPublisher(ctl)
			tCase.mockBehavior(publisher)

			svc := orderCreationService.New(
				logger.NewDiscard(),
				cache_impl.NewOrderCache(16, time.Minute),
				memory.NewOrderRepository(),
				publisher,
				metrics.NewNoop(),
				orderCreationService.Config{Topic: "order_created", PublishTimeout: time.Second},
			)
			h := NewHandler(logger.NewDiscard(), svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tCase.reqBody))
			req.Header.Set("Content-Type", "application/json")

			h.Create(rec, req)

			require.Equal(t, tCase.wantStatus, rec.Code)

			if tCase.wantStatus == http.StatusCreated {
				var order models.Order
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
				require.Equal(t, models.OrderStatusPending, order.Status)
				require.Equal(t, "u1", order.UserRef)
				return
			}

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			if tCase.wantMessage != "" {
				require.Equal(t, tCase.wantMessage, body["message"])
			}
		})
	}
}
