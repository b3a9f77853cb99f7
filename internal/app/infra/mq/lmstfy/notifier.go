package lmstfy

import (
	"context"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/model"
)

// Notifier 支付结果通知投递器（封装队列名）
type Notifier struct {
	client *Client
	queue  string
}

// NewNotifier 创建通知投递器
func NewNotifier(client *Client, queue string) *Notifier {
	return &Notifier{
		client: client,
		queue:  queue,
	}
}

// PublishPaymentResult 投递支付结果通知任务
func (n *Notifier) PublishPaymentResult(ctx context.Context, notification *model.PaymentNotification) error {
	return n.client.Publish(ctx, n.queue, notification)
}
