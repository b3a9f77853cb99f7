package model

import "time"

// 通知状态常量
const (
	NotifyStatusPaid      = "paid"
	NotifyStatusFailed    = "failed"
	NotifyStatusCancelled = "cancelled"
)

// PaymentNotification 支付结果通知任务（lmstfy 队列消息）
// 支付到达终态后投递，由通知消费者异步处理（短信/推送等）
type PaymentNotification struct {
	OrderID    string    `json:"order_id"`
	OrderRef   string    `json:"order_ref"`
	BookingNo  string    `json:"booking_no"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"` // paid / failed / cancelled
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurred_at"`
}
