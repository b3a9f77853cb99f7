package rpuser

import (
	"context"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etuser"
)

// UserRepository 用户仓储接口（只定义，不实现）
// 实现在 infra/persistence 层之上
type UserRepository interface {
	// Create 创建用户
	Create(ctx context.Context, user *etuser.User) error

	// GetByID 根据ID查询用户
	GetByID(ctx context.Context, userID string) (*etuser.User, error)

	// GetByMobile 根据手机号查询用户（检查重复注册）
	GetByMobile(ctx context.Context, mobile string) (*etuser.User, error)

	// Exists 检查用户是否存在
	Exists(ctx context.Context, userID string) (bool, error)

	// Update 更新用户资料（姓名/邮箱）
	Update(ctx context.Context, userID, name, email string) (*etuser.User, error)
}
