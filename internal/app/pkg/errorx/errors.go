package errorx

import (
	"errors"
	"fmt"
)

// 定义业务错误
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrServiceNotFound     = errors.New("service not found or inactive")
	ErrAddressNotFound     = errors.New("address not found or does not belong to user")
	ErrOrderNotFound       = errors.New("order not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateOrder      = errors.New("duplicate order reference")
)

// GatewayError 支付网关错误
// Retryable 标记错误是否可重试：
//   - 传输错误 / 5xx：网关暂时不可用，可重试
//   - 4xx：网关拒绝请求，换参数前不可重试
type GatewayError struct {
	StatusCode int
	Message    string
	Retryable  bool
	Payload    []byte // 网关返回的原始错误内容
}

// Error 实现 error 接口
func (e *GatewayError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("gateway error: status=%d, %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway error: %s", e.Message)
}

// GatewayUnavailable 创建可重试的网关错误（网络错误、5xx）
func GatewayUnavailable(statusCode int, message string) *GatewayError {
	return &GatewayError{
		StatusCode: statusCode,
		Message:    message,
		Retryable:  true,
	}
}

// GatewayRejected 创建不可重试的网关错误（4xx，附带网关错误内容）
func GatewayRejected(statusCode int, message string, payload []byte) *GatewayError {
	return &GatewayError{
		StatusCode: statusCode,
		Message:    message,
		Retryable:  false,
		Payload:    payload,
	}
}

// IsGatewayRetryable 判断错误是否为可重试的网关错误
func IsGatewayRetryable(err error) bool {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.Retryable
	}
	return false
}
