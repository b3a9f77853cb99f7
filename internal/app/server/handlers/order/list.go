package order

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// ListByUser 查询用户订单列表接口
// GET /api/v1/orders/user/:userId
func (h *OrderHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		ginx.BadRequest(c, "user id required")
		return
	}

	orders, err := h.orderService.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] list orders failed: %v", err)
		ginx.InternalError(c, "list orders failed")
		return
	}

	ginx.Success(c, response.FromOrders(orders))
}
