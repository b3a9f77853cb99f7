package rpaddress

import (
	"context"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etaddress"
)

// AddressRepository 地址仓储接口
type AddressRepository interface {
	// Create 创建地址
	Create(ctx context.Context, address *etaddress.Address) error

	// GetByID 根据ID查询地址
	GetByID(ctx context.Context, addressID string) (*etaddress.Address, error)

	// GetByIDAndUser 根据ID和用户ID查询（校验地址归属）
	GetByIDAndUser(ctx context.Context, addressID, userID string) (*etaddress.Address, error)

	// ListByUser 查询用户的地址列表（默认地址在前）
	ListByUser(ctx context.Context, userID string) ([]*etaddress.Address, error)

	// Update 更新地址字段
	Update(ctx context.Context, addressID string, updates map[string]interface{}) (*etaddress.Address, error)

	// UnsetDefaults 取消用户其它默认地址
	UnsetDefaults(ctx context.Context, userID, exceptID string) error
}
