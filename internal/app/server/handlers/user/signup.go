package user

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/request"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// Signup 用户注册接口
// POST /api/v1/users/signup
// 手机号已注册时返回既有用户，is_existing=true
func (h *UserHandler) Signup(c *gin.Context) {
	var req request.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	result, err := h.userService.Signup(c.Request.Context(), req.Mobile, req.Name, req.Email)
	if err != nil {
		log.Printf("[ERROR] signup failed: %v", err)
		ginx.InternalError(c, "signup failed")
		return
	}

	resp := &response.SignupResponse{
		User:       response.FromUser(result.User),
		IsExisting: result.IsExisting,
	}
	if result.IsExisting {
		ginx.Success(c, resp)
		return
	}
	ginx.Created(c, resp)
}
