package user

import "github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svuser"

// UserHandler 用户 HTTP 处理器
type UserHandler struct {
	userService *svuser.UserService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userService *svuser.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}
