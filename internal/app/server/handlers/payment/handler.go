package payment

import (
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svpayment"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// PaymentHandler 支付 HTTP 处理器
type PaymentHandler struct {
	paymentService *svpayment.PaymentService
	logger         logger.Logger
}

// NewPaymentHandler 创建支付处理器实例
func NewPaymentHandler(paymentService *svpayment.PaymentService, log logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         log,
	}
}
