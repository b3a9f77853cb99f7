package svuser

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// Module 用户数据操作接口（mduser.UserModule 实现）
type Module interface {
	CreateUser(ctx context.Context, user *etuser.User) error
	GetUser(ctx context.Context, userID string) (*etuser.User, error)
	GetUserByMobile(ctx context.Context, mobile string) (*etuser.User, error)
	UpdateUser(ctx context.Context, userID, name, email string) (*etuser.User, error)
}

// SignupResult 注册结果
type SignupResult struct {
	User       *etuser.User
	IsExisting bool // 手机号已注册时返回既有用户
}

// UserService 用户服务
type UserService struct {
	module Module
	logger logger.Logger
}

// NewUserService 创建用户服务实例
func NewUserService(module Module, log logger.Logger) *UserService {
	return &UserService{
		module: module,
		logger: log,
	}
}

// Signup 注册用户
// 手机号已存在时不报错，直接返回既有用户（幂等注册）
func (s *UserService) Signup(ctx context.Context, mobile, name, email string) (*SignupResult, error) {
	existing, err := s.module.GetUserByMobile(ctx, mobile)
	if err == nil {
		s.logger.Infof(ctx, "signup hit existing user: user_id=%s", existing.ID)
		return &SignupResult{User: existing, IsExisting: true}, nil
	}
	if !errors.Is(err, errorx.ErrUserNotFound) {
		return nil, err
	}

	user, err := etuser.NewUser(uuid.New().String(), mobile, name, email)
	if err != nil {
		return nil, err
	}
	if err := s.module.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infof(ctx, "user created: user_id=%s", user.ID)
	return &SignupResult{User: user, IsExisting: false}, nil
}

// GetUser 查询用户资料
func (s *UserService) GetUser(ctx context.Context, userID string) (*etuser.User, error) {
	return s.module.GetUser(ctx, userID)
}

// UpdateUser 更新用户资料（name/email 为空表示不修改）
func (s *UserService) UpdateUser(ctx context.Context, userID, name, email string) (*etuser.User, error) {
	return s.module.UpdateUser(ctx, userID, name, email)
}
