package rpservice

import (
	"context"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etservice"
)

// ServiceRepository 服务目录仓储接口
type ServiceRepository interface {
	// ListActive 查询所有上架服务（按名称排序）
	ListActive(ctx context.Context) ([]*etservice.Service, error)

	// GetActiveByID 根据ID查询上架服务
	GetActiveByID(ctx context.Context, serviceID string) (*etservice.Service, error)
}
