package mduser

import (
	"context"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpuser"
)

// UserModule 用户模块（数据编排层）
type UserModule struct {
	userRepo rpuser.UserRepository
}

// NewUserModule 创建用户模块
func NewUserModule(userRepo rpuser.UserRepository) *UserModule {
	return &UserModule{
		userRepo: userRepo,
	}
}

// CreateUser 创建用户（数据操作）
func (m *UserModule) CreateUser(ctx context.Context, user *etuser.User) error {
	return m.userRepo.Create(ctx, user)
}

// GetUser 查询用户
func (m *UserModule) GetUser(ctx context.Context, userID string) (*etuser.User, error) {
	return m.userRepo.GetByID(ctx, userID)
}

// GetUserByMobile 根据手机号查询用户（检查重复注册）
func (m *UserModule) GetUserByMobile(ctx context.Context, mobile string) (*etuser.User, error) {
	return m.userRepo.GetByMobile(ctx, mobile)
}

// UpdateUser 更新用户资料
func (m *UserModule) UpdateUser(ctx context.Context, userID, name, email string) (*etuser.User, error) {
	return m.userRepo.Update(ctx, userID, name, email)
}

// UserExists 检查用户是否存在
func (m *UserModule) UserExists(ctx context.Context, userID string) (bool, error) {
	return m.userRepo.Exists(ctx, userID)
}
