package user

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// Get godoc
// @Summary      获取用户资料
// @Tags         users
// @Produce      json
// @Param        id path string true "用户ID（UUID）"
// @Success      200 {object} ginx.Response{data=response.UserResponse}
// @Failure      404 {object} ginx.Response "用户不存在"
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		ginx.BadRequest(c, "user id required")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, errorx.ErrUserNotFound) {
			ginx.NotFound(c, "user not found")
			return
		}
		log.Printf("[ERROR] get user failed: %v", err)
		ginx.InternalError(c, "get user failed")
		return
	}

	ginx.Success(c, response.FromUser(user))
}
