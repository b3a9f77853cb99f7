package rppayment

import (
	"context"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/ettransaction"
)

// PaymentRepository 支付记录仓储接口
// Order 和 Transaction 的原子读写边界：创建、按网关订单号查找、状态投影落库
type PaymentRepository interface {
	// CreatePaymentOrder 创建订单+明细+流水（同一事务，三者要么全部落库要么全不落库）
	CreatePaymentOrder(ctx context.Context, order *etorder.Order, tx *ettransaction.Transaction) error

	// GetTransactionByOrderRef 根据对外订单号查询流水
	// order_ref 是流水表上的独立唯一索引列，不再查询 gateway_response JSON
	GetTransactionByOrderRef(ctx context.Context, orderRef string) (*ettransaction.Transaction, error)

	// GetOrderByID 根据ID查询订单（不含明细）
	GetOrderByID(ctx context.Context, orderID string) (*etorder.Order, error)

	// AttachGatewayOrder 网关建单成功后回写网关流水号和原始响应
	AttachGatewayOrder(ctx context.Context, transactionID, gatewayTransactionID string, raw []byte) error

	// ApplyOutcome 将终态结果原子地投影到流水和订单
	// 流水行上做条件更新（仅 pending 可更新），订单在同一事务内跟随更新；
	// 流水已到终态时返回 applied=false 且不报错（幂等）
	ApplyOutcome(ctx context.Context, orderRef string, txStatus ettransaction.Status, orderStatus etorder.OrderStatus, payStatus etorder.PaymentStatus, raw []byte) (applied bool, err error)

	// ListTransactionsByOrder 查询订单的流水列表（订单详情展示用）
	ListTransactionsByOrder(ctx context.Context, orderID string) ([]*ettransaction.Transaction, error)
}
