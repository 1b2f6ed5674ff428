package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	stripewebhook "github.com/stripe/stripe-go/v76/webhook"

	"github.com/tumbleweedd/order_pipeline/internal/config"
	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
	"github.com/tumbleweedd/order_pipeline/internal/metrics"
	"github.com/tumbleweedd/order_pipeline/internal/repository/memory"
	"github.com/tumbleweedd/order_pipeline/pkg/brokers"
	"github.com/tumbleweedd/order_pipeline/pkg/brokers/inmem"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

const (
	testTopic         = "order_created"
	testWebhookSecret = "whsec_e2e"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:     "local",
		Storage: config.StorageMemory,
		HTTP:    config.HTTPConfig{ShutdownTimeout: time.Second},
		Kafka: config.KafkaConfig{
			OrderEventTopic: testTopic,
			PublishTimeout:  time.Second,
			MaxAttempts:     2,
			RetryInitial:    time.Millisecond,
			RetryMax:        time.Millisecond,
		},
		Cache: config.CacheConfig{Size: 16, TTL: time.Minute},
		Processor: config.ProcessorConfig{
			SecretKey:     "sk_test_e2e",
			WebhookSecret: testWebhookSecret,
			Timeout:       time.Second,
		},
		OrdersClient: config.OrdersClientConfig{Timeout: time.Second, MaxRetries: 1},
	}
}

// serve runs a until the test ends and exposes its handler on a test server.
func serve(t *testing.T, a *App) *httptest.Server {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- a.Run(ctx) }()

	srv := httptest.NewServer(a.HTTPServer.Handler())
	t.Cleanup(func() {
		srv.Close()
		cancel()
		require.NoError(t, <-done)
	})

	return srv
}

func fakeStripe(t *testing.T) stripe.Backend {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"id":"pi_e2e","object":"payment_intent","client_secret":"pi_e2e_secret","status":"requires_payment_method","amount":4000,"currency":"usd"}`)
	}))
	t.Cleanup(srv.Close)

	return stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
}

func do(t *testing.T, method, url string, body []byte, header http.Header) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, buf.Bytes()
}

func TestOrderPaymentFlowThroughGateway(t *testing.T) {
	log := logger.NewDiscard()
	m := metrics.NewNoop()

	bus := inmem.NewBus(log, brokers.RetryPolicy{MaxAttempts: 2, Initial: time.Millisecond, Max: time.Millisecond})
	t.Cleanup(func() { _ = bus.Close() })

	paymentRepo := memory.NewPaymentRepository()

	orderApp, err := NewOrderApp(context.Background(), log, testConfig(), m, WithBus(bus))
	require.NoError(t, err)
	orderSrv := serve(t, orderApp)

	paymentCfg := testConfig()
	paymentCfg.OrdersClient.BaseURL = orderSrv.URL

	paymentApp, err := NewPaymentApp(context.Background(), log, paymentCfg, m, WithBus(bus), func(o *options) {
		o.paymentRepo = paymentRepo
		o.processorBackend = fakeStripe(t)
	})
	require.NoError(t, err)
	paymentSrv := serve(t, paymentApp)

	gatewayCfg := testConfig()
	gatewayCfg.Gateway.Routes = []config.RouteConfig{
		{Prefix: "/orders", Target: orderSrv.URL},
		{Prefix: "/payments", Target: paymentSrv.URL},
	}
	gatewayApp, err := NewGatewayApp(log, gatewayCfg)
	require.NoError(t, err)
	gatewaySrv := serve(t, gatewayApp)

	code, body := do(t, http.MethodPost, gatewaySrv.URL+"/orders",
		[]byte(`{"userRef":"u1","productRef":"p1","quantity":2,"totalAmount":"40.00"}`), nil)
	require.Equal(t, http.StatusCreated, code, string(body))

	var order models.Order
	require.NoError(t, json.Unmarshal(body, &order))
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, "40", order.TotalAmount.String())

	require.Eventually(t, func() bool { return paymentRepo.ObservedCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	// A redelivered event followed by garbage: once the garbage is dead-lettered
	// the redelivery has been handled.
	published := bus.Messages(testTopic)
	require.Len(t, published, 1)
	require.NoError(t, bus.Publish(context.Background(), testTopic, published[0].Key, published[0].Value))
	require.NoError(t, bus.Publish(context.Background(), testTopic, "garbage", []byte("{")))

	require.Eventually(t, func() bool {
		return len(bus.Messages(brokers.DeadLetterTopic(testTopic))) == 1
	}, 2*time.Second, 10*time.Millisecond)
	require.Equal(t, 1, paymentRepo.ObservedCount())
	require.Equal(t, 0, paymentRepo.PaymentCount())

	code, body = do(t, http.MethodPost, gatewaySrv.URL+"/payments",
		[]byte(fmt.Sprintf(`{"amount":4000,"currency":"USD","orderId":%q}`, order.OrderUUID)), nil)
	require.Equal(t, http.StatusCreated, code, string(body))
	require.JSONEq(t, `{"clientSecret":"pi_e2e_secret","authorizationId":"pi_e2e"}`, string(body))

	event := []byte(fmt.Sprintf(`{
		"id": "evt_e2e",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {
			"id": "pi_e2e",
			"object": "payment_intent",
			"amount": 4000,
			"currency": "usd",
			"metadata": {"order_id": %q}
		}}
	}`, order.OrderUUID))

	for i := 0; i < 2; i++ {
		signed := stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{
			Payload:   event,
			Secret:    testWebhookSecret,
			Timestamp: time.Now(),
		})

		code, body = do(t, http.MethodPost, gatewaySrv.URL+"/payments/webhook", signed.Payload,
			http.Header{"Stripe-Signature": []string{signed.Header}})
		require.Equal(t, http.StatusOK, code, string(body))
	}

	code, body = do(t, http.MethodGet, gatewaySrv.URL+"/orders/"+order.OrderUUID.String(), nil, nil)
	require.Equal(t, http.StatusOK, code)

	var got models.Order
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, models.OrderStatusCompleted, got.Status)

	code, body = do(t, http.MethodGet, gatewaySrv.URL+"/payments/pi_e2e", nil, nil)
	require.Equal(t, http.StatusOK, code)

	var view models.PaymentView
	require.NoError(t, json.Unmarshal(body, &view))
	require.Equal(t, "succeeded", view.CurrentStatus)
	require.Len(t, view.Outcomes, 1)
	require.Equal(t, models.OutcomeOrderCompleted, view.Outcomes[0].Result)

	code, _ = do(t, http.MethodGet, gatewaySrv.URL+"/inventory/1", nil, nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestNewBusWithoutBrokersIsInProcess(t *testing.T) {
	bus := NewBus(logger.NewDiscard(), config.KafkaConfig{OrderEventTopic: testTopic}, metrics.NewNoop())
	t.Cleanup(func() { _ = bus.Close() })

	_, ok := bus.(*inmem.Bus)
	require.True(t, ok)
	require.NoError(t, bus.Healthy(context.Background()))
}
