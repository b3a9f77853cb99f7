package order

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/request"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// Create 创建预约单接口
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ord, err := h.orderService.CreateOrder(c.Request.Context(), req.ToCreateOrderParams())
	if err != nil {
		switch {
		case errors.Is(err, errorx.ErrUserNotFound):
			ginx.NotFound(c, "user not found")
		case errors.Is(err, errorx.ErrServiceNotFound):
			ginx.NotFound(c, "service not found or inactive")
		case errors.Is(err, errorx.ErrAddressNotFound):
			ginx.NotFound(c, "address not found or does not belong to user")
		default:
			log.Printf("[ERROR] create order failed: %v", err)
			ginx.InternalError(c, "create order failed")
		}
		return
	}

	ginx.Created(c, response.FromOrder(ord))
}
