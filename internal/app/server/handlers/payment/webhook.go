package payment

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svpayment"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// Webhook 网关回调接口
// POST /api/v1/payment/webhook
// 约定 at-least-once：无论处理结果如何都返回 200，失败只记录日志，
// 否则网关会按未确认无限重投
func (h *PaymentHandler) Webhook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "read webhook body failed: %v", err)
		ginx.Success(c, gin.H{"received": false})
		return
	}

	var event svpayment.WebhookEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		h.logger.Errorf(c.Request.Context(), "parse webhook body failed: %v", err)
		ginx.Success(c, gin.H{"received": false})
		return
	}

	if err := h.paymentService.ApplyWebhook(c.Request.Context(), &event, raw); err != nil {
		h.logger.Errorf(c.Request.Context(), "process webhook failed: type=%s, error=%v", event.Type, err)
		ginx.Success(c, gin.H{"received": false})
		return
	}

	ginx.Success(c, gin.H{"received": true})
}
