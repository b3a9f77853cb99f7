package payment

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// maxWaitSeconds Smart Wait 上限，防止长连接占用
const maxWaitSeconds = 30

// Verify godoc
// @Summary      核验支付结果
// @Description  轮询网关并对账，返回对账后的订单/流水状态
// @Description
// @Description  网关仍为 pending 时可带 wait=N 秒挂起等待 webhook 结果
// @Tags         payment
// @Produce      json
// @Param        orderRef path string true "商户侧订单引用"
// @Param        wait query int false "挂起等待秒数（0-30）"
// @Success      200 {object} ginx.Response{data=response.VerifyPaymentResponse}
// @Failure      404 {object} ginx.Response "订单引用不存在"
// @Failure      502 {object} ginx.Response "网关不可用"
// @Router       /payment/verify/{orderRef} [get]
func (h *PaymentHandler) Verify(c *gin.Context) {
	orderRef := c.Param("orderRef")
	if orderRef == "" {
		ginx.BadRequest(c, "order reference required")
		return
	}

	var wait time.Duration
	if waitStr := c.Query("wait"); waitStr != "" {
		w, err := strconv.Atoi(waitStr)
		if err != nil || w < 0 || w > maxWaitSeconds {
			ginx.BadRequest(c, "wait must be an integer between 0 and 30")
			return
		}
		wait = time.Duration(w) * time.Second
	}

	summary, err := h.paymentService.Verify(c.Request.Context(), orderRef, wait)
	if err != nil {
		h.respondError(c, err, "verify payment failed")
		return
	}

	ginx.Success(c, response.FromOutcomeSummary(summary))
}
