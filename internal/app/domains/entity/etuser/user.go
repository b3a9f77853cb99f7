package etuser

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidUserID = errors.New("user ID cannot be empty")
	ErrInvalidMobile = errors.New("mobile cannot be empty")
)

// User 用户实体
type User struct {
	ID        string    // 用户ID (UUID)
	Mobile    string    // 手机号（唯一）
	Name      string    // 姓名
	Email     string    // 邮箱
	CreatedAt time.Time // 创建时间
	UpdatedAt time.Time // 更新时间
}

// NewUser 创建用户（工厂方法）
func NewUser(id, mobile, name, email string) (*User, error) {
	// 业务规则校验
	if id == "" {
		return nil, ErrInvalidUserID
	}
	if mobile == "" {
		return nil, ErrInvalidMobile
	}

	now := time.Now()
	return &User{
		ID:        id,
		Mobile:    mobile,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
