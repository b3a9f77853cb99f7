package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/model"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/mq/lmstfy"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// NotificationConsumer 支付结果通知消费者
// 职责：
// 1. 从 lmstfy 队列消费支付结果通知任务
// 2. 解析任务并执行用户侧通知
// 3. 确认消息（ACK）
type NotificationConsumer struct {
	lmstfyClient *lmstfy.Client
	queueName    string
	logger       logger.Logger

	// 消费配置
	timeout      int // 拉取消息超时（秒）
	ttr          int // Time-To-Run（秒）
	pollInterval time.Duration

	closing   atomic.Bool
	processed atomic.Int64
}

// Config 消费者配置
type Config struct {
	QueueName    string        // 队列名称
	Timeout      int           // 拉取消息超时（秒）
	TTR          int           // Time-To-Run（秒）
	PollInterval time.Duration // 出错后的轮询间隔
}

// NewNotificationConsumer 创建通知消费者实例
func NewNotificationConsumer(lmstfyClient *lmstfy.Client, config *Config, log logger.Logger) *NotificationConsumer {
	return &NotificationConsumer{
		lmstfyClient: lmstfyClient,
		queueName:    config.QueueName,
		timeout:      config.Timeout,
		ttr:          config.TTR,
		pollInterval: config.PollInterval,
		logger:       log,
	}
}

// Start 启动消费循环（阻塞直到 ctx 取消或 Stop 调用）
func (c *NotificationConsumer) Start(ctx context.Context) error {
	c.logger.Infof(ctx, "notification consumer started: queue=%s, timeout=%d, ttr=%d", c.queueName, c.timeout, c.ttr)

	for {
		if c.closing.Load() {
			c.logger.Infof(ctx, "notification consumer stopped, processed=%d", c.processed.Load())
			return nil
		}
		select {
		case <-ctx.Done():
			c.logger.Infof(ctx, "notification consumer stopped, processed=%d", c.processed.Load())
			return ctx.Err()
		default:
			if err := c.consumeOne(ctx); err != nil {
				c.logger.Errorf(ctx, "consume notification failed: %v", err)
				time.Sleep(c.pollInterval)
			}
		}
	}
}

// Stop 标记停止，消费循环在当前消息处理完后退出
func (c *NotificationConsumer) Stop() {
	c.closing.Store(true)
}

// consumeOne 消费一条消息
func (c *NotificationConsumer) consumeOne(ctx context.Context) error {
	msg, err := c.lmstfyClient.Consume(ctx, c.queueName, c.timeout, c.ttr)
	if err != nil {
		return fmt.Errorf("consume message failed: %w", err)
	}
	if msg == nil {
		// 队列为空，继续等待
		return nil
	}

	notification, err := c.parseMessage(msg.Data)
	if err != nil {
		c.logger.Errorf(ctx, "parse notification failed: job_id=%s, error=%v", msg.JobID, err)
		// 解析失败直接 ACK，避免坏消息死循环
		_ = c.lmstfyClient.Ack(ctx, c.queueName, msg.JobID)
		return err
	}

	if err := c.handle(ctx, notification); err != nil {
		// 处理失败不 ACK，由 lmstfy TTR 机制重投
		c.logger.Errorf(ctx, "handle notification failed: job_id=%s, order_id=%s, error=%v", msg.JobID, notification.OrderID, err)
		return err
	}

	if err := c.lmstfyClient.Ack(ctx, c.queueName, msg.JobID); err != nil {
		c.logger.Errorf(ctx, "ack notification failed: job_id=%s, error=%v", msg.JobID, err)
		return err
	}

	c.processed.Inc()
	return nil
}

// handle 执行用户侧通知
// TODO: 接入短信/推送渠道，当前仅落结构化日志
func (c *NotificationConsumer) handle(ctx context.Context, n *model.PaymentNotification) error {
	ctx = logger.WithOrderRef(ctx, n.OrderRef)
	c.logger.Infof(ctx, "payment notification: order_id=%s, booking_no=%s, user_id=%s, status=%s, amount=%.2f %s",
		n.OrderID, n.BookingNo, n.UserID, n.Status, n.Amount, n.Currency)
	return nil
}

// parseMessage 解析消息数据
func (c *NotificationConsumer) parseMessage(data json.RawMessage) (*model.PaymentNotification, error) {
	var notification model.PaymentNotification
	if err := json.Unmarshal(data, &notification); err != nil {
		return nil, fmt.Errorf("unmarshal notification failed: %w", err)
	}
	if notification.OrderRef == "" {
		return nil, fmt.Errorf("order_ref is required")
	}
	if notification.Status == "" {
		return nil, fmt.Errorf("status is required")
	}
	return &notification, nil
}
