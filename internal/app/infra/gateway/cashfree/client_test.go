package cashfree

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwikyankit/qwiky-backend/internal/app/config"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		baseURL:    serverURL,
		appID:      "test-app-id",
		secretKey:  "test-secret",
		httpClient: http.DefaultClient,
		logger:     logger.NewNopLogger(),
	}
}

func TestNewClientEnvSelection(t *testing.T) {
	sandbox := NewClient(&config.CashfreeConfig{
		Env: "SANDBOX", AppID: "sb-id", SecretKey: "sb-key",
		AppIDProd: "prod-id", SecretKeyProd: "prod-key",
	}, logger.NewNopLogger())
	assert.Equal(t, sandboxBaseURL, sandbox.baseURL)
	assert.Equal(t, "sb-id", sandbox.appID)

	prod := NewClient(&config.CashfreeConfig{
		Env: "PRODUCTION", AppID: "sb-id", SecretKey: "sb-key",
		AppIDProd: "prod-id", SecretKeyProd: "prod-key",
	}, logger.NewNopLogger())
	assert.Equal(t, productionBaseURL, prod.baseURL)
	assert.Equal(t, "prod-id", prod.appID)
	assert.Equal(t, "prod-key", prod.secretKey)
}

func TestCreateOrderSendsAuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, apiVersion, r.Header.Get("x-api-version"))
		assert.Equal(t, "test-app-id", r.Header.Get("x-client-id"))
		assert.Equal(t, "test-secret", r.Header.Get("x-client-secret"))

		var req CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ref-1", req.OrderID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"order_id":           req.OrderID,
			"cf_order_id":        "cf-42",
			"order_status":       "ACTIVE",
			"order_amount":       req.OrderAmount,
			"payment_session_id": "session-xyz",
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	resp, err := client.CreateOrder(context.Background(), &CreateOrderRequest{
		OrderID:       "ref-1",
		OrderAmount:   499,
		OrderCurrency: "INR",
	})
	require.NoError(t, err)
	assert.Equal(t, "cf-42", resp.CFOrderID)
	assert.Equal(t, "session-xyz", resp.PaymentSessionID)
	assert.NotEmpty(t, resp.Raw)
}

func TestGetOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/ref-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"order_id":       "ref-1",
			"order_status":   "PAID",
			"payment_status": "SUCCESS",
			"order_amount":   499.0,
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	status, err := client.GetOrderStatus(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "PAID", status.OrderStatus)
	assert.Equal(t, "SUCCESS", status.PaymentStatus)
}

func TestServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GetOrderStatus(context.Background(), "ref-1")
	require.Error(t, err)
	assert.True(t, errorx.IsGatewayRetryable(err))
}

func TestClientErrorCarriesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"order_id invalid"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GetOrderStatus(context.Background(), "bad ref")
	require.Error(t, err)
	assert.False(t, errorx.IsGatewayRetryable(err))

	var gwErr *errorx.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusBadRequest, gwErr.StatusCode)
	assert.Contains(t, string(gwErr.Payload), "order_id invalid")
}

func TestTransportErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // 连接拒绝

	client := newTestClient(srv.URL)
	_, err := client.GetOrderStatus(context.Background(), "ref-1")
	require.Error(t, err)
	assert.True(t, errorx.IsGatewayRetryable(err))
}
