package order

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// GetDetails godoc
// @Summary      获取订单详情
// @Description  根据订单ID获取订单详细信息（含明细与支付流水）
// @Tags         orders
// @Produce      json
// @Param        orderId path string true "订单ID（UUID）"
// @Success      200 {object} ginx.Response{data=response.OrderResponse}
// @Failure      404 {object} ginx.Response "订单不存在"
// @Router       /orders/details/{orderId} [get]
func (h *OrderHandler) GetDetails(c *gin.Context) {
	orderID := c.Param("orderId")
	if orderID == "" {
		ginx.BadRequest(c, "order id required")
		return
	}

	detail, err := h.orderService.GetOrderDetail(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, errorx.ErrOrderNotFound) {
			ginx.NotFound(c, "order not found")
			return
		}
		log.Printf("[ERROR] get order detail failed: %v", err)
		ginx.InternalError(c, "get order detail failed")
		return
	}

	ginx.Success(c, response.FromOrderWithTransactions(detail.Order, detail.Transactions))
}
