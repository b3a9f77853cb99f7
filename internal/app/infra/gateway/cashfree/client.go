package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/qwikyankit/qwiky-backend/internal/app/config"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

const (
	sandboxBaseURL    = "https://sandbox.cashfree.com/pg"
	productionBaseURL = "https://api.cashfree.com/pg"

	apiVersion = "2023-08-01"
)

// Gateway 支付网关接口
type Gateway interface {
	// CreateOrder 在网关侧建单，返回 payment_session_id 供客户端发起支付
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error)

	// GetOrderStatus 查询网关订单状态（幂等读，verify 路径使用）
	GetOrderStatus(ctx context.Context, orderRef string) (*OrderStatus, error)

	// GetPaymentDetail 查询单笔支付详情（仅审计用）
	GetPaymentDetail(ctx context.Context, orderRef, paymentID string) (*PaymentDetail, error)
}

// Client Cashfree 客户端
// 构造时根据配置一次性确定环境和凭据（凭据缺失在 config.Validate 阶段拦截）
type Client struct {
	baseURL    string
	appID      string
	secretKey  string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient 创建 Cashfree 客户端
func NewClient(cfg *config.CashfreeConfig, log logger.Logger) *Client {
	baseURL := sandboxBaseURL
	if cfg.IsProduction() {
		baseURL = productionBaseURL
	}

	appID, secretKey := cfg.Credentials()

	return &Client{
		baseURL:   baseURL,
		appID:     appID,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: log,
	}
}

// CreateOrder 在网关侧建单
func (c *Client) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	c.logger.Infof(ctx, "Creating cashfree order: order_ref=%s, amount=%.2f", req.OrderID, req.OrderAmount)

	raw, err := c.do(ctx, http.MethodPost, "/orders", req)
	if err != nil {
		return nil, err
	}

	var resp CreateOrderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errorx.GatewayUnavailable(0, fmt.Sprintf("decode create order response: %v", err))
	}
	resp.Raw = raw

	c.logger.Infof(ctx, "Cashfree order created: order_ref=%s, cf_order_id=%s", resp.OrderID, resp.CFOrderID)
	return &resp, nil
}

// GetOrderStatus 查询网关订单状态
func (c *Client) GetOrderStatus(ctx context.Context, orderRef string) (*OrderStatus, error) {
	raw, err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderRef), nil)
	if err != nil {
		return nil, err
	}

	var status OrderStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, errorx.GatewayUnavailable(0, fmt.Sprintf("decode order status response: %v", err))
	}
	status.Raw = raw

	c.logger.Infof(ctx, "Cashfree order status: order_ref=%s, order_status=%s, payment_status=%s",
		orderRef, status.OrderStatus, status.PaymentStatus)
	return &status, nil
}

// GetPaymentDetail 查询单笔支付详情
func (c *Client) GetPaymentDetail(ctx context.Context, orderRef, paymentID string) (*PaymentDetail, error) {
	path := fmt.Sprintf("/orders/%s/payments/%s", url.PathEscape(orderRef), url.PathEscape(paymentID))
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var detail PaymentDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, errorx.GatewayUnavailable(0, fmt.Sprintf("decode payment detail response: %v", err))
	}
	detail.Raw = raw

	return &detail, nil
}

// do 发送请求并按状态码分类错误
// 传输错误/5xx 可重试，4xx 不可重试并附带网关错误内容
func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request failed: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-version", apiVersion)
	req.Header.Set("x-client-id", c.appID)
	req.Header.Set("x-client-secret", c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errorx.GatewayUnavailable(0, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorx.GatewayUnavailable(resp.StatusCode, err.Error())
	}

	switch {
	case resp.StatusCode >= 500:
		c.logger.Errorf(ctx, "Cashfree request failed: %s %s status=%d", method, path, resp.StatusCode)
		return nil, errorx.GatewayUnavailable(resp.StatusCode, "cashfree unavailable")
	case resp.StatusCode >= 400:
		c.logger.Errorf(ctx, "Cashfree request rejected: %s %s status=%d body=%s", method, path, resp.StatusCode, raw)
		return nil, errorx.GatewayRejected(resp.StatusCode, "cashfree rejected request", raw)
	}

	return raw, nil
}
