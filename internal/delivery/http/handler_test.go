package httpdelivery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

func TestProbes(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	tCases := []struct {
		name       string
		checks     map[string]Check
		wantStatus int
		wantBody   string
	}{
		{name: "no checks", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "all healthy", checks: map[string]Check{"postgres": healthy, "bus": healthy}, wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{
			name:       "bus down",
			checks:     map[string]Check{"postgres": healthy, "bus": broken},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"bus":"unavailable"}}`,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			router := newBaseRouter(logger.NewDiscard(), tCase.checks)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			require.Equal(t, tCase.wantStatus, rec.Code)
			require.JSONEq(t, tCase.wantBody, rec.Body.String())

			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			require.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestGatewayRouterKeepsProbes(t *testing.T) {
	forwarded := 0
	router := NewGatewayRouter(logger.NewDiscard(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		forwarded++
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/abc", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, 1, forwarded)
}
