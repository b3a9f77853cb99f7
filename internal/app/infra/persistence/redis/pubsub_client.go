package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PubSubClient Redis Pub/Sub 客户端封装
type PubSubClient struct {
	rdb *redis.Client
}

// NewPubSubClient 创建 Pub/Sub 客户端，支持密码认证
func NewPubSubClient(addr, password string, db int) (*PubSubClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &PubSubClient{rdb: rdb}, nil
}

// ResultChannel 订单支付结果的独立频道名称
func ResultChannel(orderRef string) string {
	return fmt.Sprintf("payment:result:%s", orderRef)
}

// ResultSubscription 已建立的结果频道订阅
// Open 和 Wait 分离：调用方可以先建立订阅再做对账检查，
// 两步之间发布的结果不会丢
type ResultSubscription interface {
	// Wait 等待消息，超时返回 context.DeadlineExceeded
	Wait(ctx context.Context, timeout time.Duration) (string, error)

	// Close 关闭订阅
	Close() error
}

// Subscription Redis Pub/Sub 订阅封装
type Subscription struct {
	sub *redis.PubSub
}

// Open 订阅指定 channel，立即返回订阅句柄
// 用于 Smart Wait：verify 轮询时网关仍为 pending，订阅结果频道等 webhook 推送
func (c *PubSubClient) Open(ctx context.Context, channel string) ResultSubscription {
	return &Subscription{sub: c.rdb.Subscribe(ctx, channel)}
}

// Wait 等待订阅频道上的下一条消息，支持超时控制
func (s *Subscription) Wait(ctx context.Context, timeout time.Duration) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case msg := <-s.sub.Channel():
		return msg.Payload, nil
	case <-timeoutCtx.Done():
		return "", timeoutCtx.Err()
	}
}

// Close 关闭订阅
func (s *Subscription) Close() error {
	return s.sub.Close()
}

// Publish 向指定 channel 发布消息
func (c *PubSubClient) Publish(ctx context.Context, channel string, message string) error {
	return c.rdb.Publish(ctx, channel, message).Err()
}

// Close 关闭连接
func (c *PubSubClient) Close() error {
	return c.rdb.Close()
}
