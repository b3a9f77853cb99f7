package rpuser

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/persistence/entity"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
)

// UserRepositoryImpl 用户仓储实现（MySQL）
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create 创建用户
func (r *UserRepositoryImpl) Create(ctx context.Context, user *etuser.User) error {
	po := &entity.User{
		ID:        user.ID,
		Mobile:    user.Mobile,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(po).Error
}

// GetByID 根据ID查询用户
func (r *UserRepositoryImpl) GetByID(ctx context.Context, userID string) (*etuser.User, error) {
	var po entity.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrUserNotFound
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// GetByMobile 根据手机号查询用户（用于检查重复注册）
// 未注册时返回 errorx.ErrUserNotFound
func (r *UserRepositoryImpl) GetByMobile(ctx context.Context, mobile string) (*etuser.User, error) {
	var po entity.User
	err := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrUserNotFound
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// Exists 检查用户是否存在
func (r *UserRepositoryImpl) Exists(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}

// Update 更新用户资料
func (r *UserRepositoryImpl) Update(ctx context.Context, userID, name, email string) (*etuser.User, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if name != "" {
		updates["name"] = name
	}
	if email != "" {
		updates["email"] = email
	}

	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errorx.ErrUserNotFound
	}

	return r.GetByID(ctx, userID)
}

// toDomainModel GORM 模型转换为领域对象
func toDomainModel(po *entity.User) *etuser.User {
	return &etuser.User{
		ID:        po.ID,
		Mobile:    po.Mobile,
		Name:      po.Name,
		Email:     po.Email,
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	}
}
