package user

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/request"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// Update 更新用户资料接口
// PUT /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		ginx.BadRequest(c, "user id required")
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, errorx.ErrUserNotFound) {
			ginx.NotFound(c, "user not found")
			return
		}
		log.Printf("[ERROR] update user failed: %v", err)
		ginx.InternalError(c, "update user failed")
		return
	}

	ginx.Success(c, response.FromUser(user))
}
