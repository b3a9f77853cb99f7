package cashfree

import "encoding/json"

// 网关订单/支付状态常量（Cashfree 2023-08-01）
const (
	OrderStatusPaid          = "PAID"
	OrderStatusActive        = "ACTIVE"
	PaymentStatusSuccess     = "SUCCESS"
	PaymentStatusFailed      = "FAILED"
	PaymentStatusUserDropped = "USER_DROPPED"
	PaymentStatusPending     = "PENDING"
)

// CustomerDetails 下单客户信息
type CustomerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

// OrderMeta 回调地址信息
type OrderMeta struct {
	ReturnURL string `json:"return_url"`
	NotifyURL string `json:"notify_url"`
}

// CreateOrderRequest 网关建单请求
type CreateOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	OrderMeta       OrderMeta       `json:"order_meta"`
}

// CreateOrderResponse 网关建单响应
type CreateOrderResponse struct {
	OrderID          string  `json:"order_id"`
	CFOrderID        string  `json:"cf_order_id"`
	OrderStatus      string  `json:"order_status"`
	OrderAmount      float64 `json:"order_amount"`
	PaymentSessionID string  `json:"payment_session_id"`

	// Raw 网关原始响应，落库留作审计
	Raw json.RawMessage `json:"-"`
}

// OrderStatus 网关订单状态（verify 轮询结果）
type OrderStatus struct {
	OrderID       string  `json:"order_id"`
	CFOrderID     string  `json:"cf_order_id"`
	OrderStatus   string  `json:"order_status"`
	PaymentStatus string  `json:"payment_status"`
	OrderAmount   float64 `json:"order_amount"`
	PaymentTime   string  `json:"payment_time"`

	// Raw 网关原始响应
	Raw json.RawMessage `json:"-"`
}

// PaymentDetail 单笔支付详情（仅审计用）
type PaymentDetail struct {
	CFPaymentID   json.Number `json:"cf_payment_id"`
	PaymentStatus string      `json:"payment_status"`
	PaymentAmount float64     `json:"payment_amount"`
	PaymentTime   string      `json:"payment_time"`

	Raw json.RawMessage `json:"-"`
}
