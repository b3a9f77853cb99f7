package payment

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/request"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// CreateOrder 发起支付接口
// POST /api/v1/payment/create-order
// 同一事务创建订单+流水后向网关建单；网关失败时记录保持 pending，
// 客户端可用不同 order_id 重试
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req request.CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	result, err := h.paymentService.Initiate(c.Request.Context(), req.ToInitiateRequest())
	if err != nil {
		h.respondError(c, err, "create payment order failed")
		return
	}

	ginx.Created(c, response.FromInitiateResult(result))
}

// respondError 支付错误到 HTTP 响应的映射
func (h *PaymentHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, errorx.ErrUserNotFound):
		ginx.NotFound(c, "user not found")
	case errors.Is(err, errorx.ErrServiceNotFound):
		ginx.NotFound(c, "service not found or inactive")
	case errors.Is(err, errorx.ErrAddressNotFound):
		ginx.NotFound(c, "address not found or does not belong to user")
	case errors.Is(err, errorx.ErrOrderNotFound), errors.Is(err, errorx.ErrTransactionNotFound):
		ginx.NotFound(c, "payment order not found")
	case errors.Is(err, errorx.ErrDuplicateOrder):
		ginx.Error(c, 409, "order reference already used")
	case errorx.IsGatewayRetryable(err):
		ginx.BadGateway(c, "payment gateway unavailable")
	default:
		var gwErr *errorx.GatewayError
		if errors.As(err, &gwErr) {
			ginx.BadGateway(c, gwErr.Message)
			return
		}
		h.logger.Errorf(c.Request.Context(), "%s: %v", fallback, err)
		ginx.InternalError(c, fallback)
	}
}
