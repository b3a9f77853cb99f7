package response

// UserResponse 用户信息响应
type UserResponse struct {
	ID        string `json:"id"`
	Mobile    string `json:"mobile"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at"`
}

// SignupResponse 注册响应
type SignupResponse struct {
	User       *UserResponse `json:"user"`
	IsExisting bool          `json:"is_existing"`
}
