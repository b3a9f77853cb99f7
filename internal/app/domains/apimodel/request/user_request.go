package request

// SignupRequest 用户注册请求
type SignupRequest struct {
	Mobile string `json:"mobile" binding:"required" example:"9876543210"`
	Name   string `json:"name" example:"Ankit"`
	Email  string `json:"email" binding:"omitempty,email" example:"ankit@example.com"`
}

// UpdateUserRequest 更新用户资料请求
type UpdateUserRequest struct {
	Name  string `json:"name" example:"Ankit"`
	Email string `json:"email" binding:"omitempty,email" example:"ankit@example.com"`
}
