package rporder

import (
	"context"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
)

// OrderRepository 订单仓储接口（只定义，不实现）
type OrderRepository interface {
	// CreateWithItems 创建订单和订单明细（同一事务，要么全部落库要么全不落库）
	CreateWithItems(ctx context.Context, order *etorder.Order) error

	// GetByID 根据ID查询订单（含明细）
	GetByID(ctx context.Context, orderID string) (*etorder.Order, error)

	// ListByUser 查询用户的订单列表（含明细，按创建时间倒序）
	ListByUser(ctx context.Context, userID string) ([]*etorder.Order, error)
}
