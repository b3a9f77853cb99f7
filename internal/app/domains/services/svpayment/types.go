package svpayment

import (
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/ettransaction"
)

// Cashfree webhook 声明类型
const (
	WebhookTypePaymentSuccess     = "PAYMENT_SUCCESS_WEBHOOK"
	WebhookTypePaymentFailed      = "PAYMENT_FAILED_WEBHOOK"
	WebhookTypePaymentUserDropped = "PAYMENT_USER_DROPPED_WEBHOOK"
)

// CustomerInfo 下单客户信息
type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

// InitiateRequest 发起支付参数
type InitiateRequest struct {
	OrderRef      string  // 商户侧订单引用（全局唯一，贯穿网关往返）
	UserID        string
	ServiceID     string
	AddressID     *string
	Amount        float64
	ScheduledDate string
	ScheduledTime string
	Customer      CustomerInfo
}

// InitiateResult 发起支付结果
type InitiateResult struct {
	PaymentSessionID string
	ReturnURL        string
	OrderID          string
	BookingNo        string
	TransactionID    string
}

// OutcomeSummary 核验后的订单/流水投影
type OutcomeSummary struct {
	OrderRef             string
	Outcome              ettransaction.Outcome
	OrderID              string
	BookingNo            string
	OrderStatus          etorder.OrderStatus
	PaymentStatus        etorder.PaymentStatus
	TransactionID        string
	TransactionStatus    ettransaction.Status
	GatewayOrderStatus   string
	GatewayPaymentStatus string
	CFOrderID            string
	Amount               float64
	PaymentTime          string
}

// WebhookEvent 网关 webhook 事件（只解析对账需要的字段，原始报文另行透传）
type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Order struct {
			OrderID string `json:"order_id"`
		} `json:"order"`
		Payment struct {
			PaymentStatus string `json:"payment_status"`
		} `json:"payment"`
	} `json:"data"`
}
