package ettransaction

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidTransactionID = errors.New("transaction ID cannot be empty")
	ErrInvalidOrderID       = errors.New("order ID cannot be empty")
	ErrInvalidOrderRef      = errors.New("order reference cannot be empty")
	ErrInvalidAmount        = errors.New("amount must be positive")
)

// GatewayName 固定网关名称（单网关系统）
const GatewayName = "Cashfree"

// DefaultCurrency 默认币种
const DefaultCurrency = "INR"

// Transaction 支付流水实体
// 每个订单恰好一条流水，重试不会新建流水
type Transaction struct {
	ID                   string    // 流水ID (UUID)
	OrderID              string    // 所属订单ID
	OrderRef             string    // 对外订单号（网关 correlation 键）
	PaymentGateway       string    // 网关名称
	Amount               float64   // 金额
	Currency             string    // 币种
	Status               Status    // 流水状态
	GatewayTransactionID string    // 网关侧流水号（网关响应前为空）
	GatewayResponse      []byte    // 网关最近一次原始响应（审计用）
	CreatedAt            time.Time // 创建时间
	UpdatedAt            time.Time // 更新时间
}

// Status 支付流水状态
// pending → success | failed | cancelled，三者均为终态
type Status string

const (
	StatusPending   Status = "pending"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// NewTransaction 创建流水（工厂方法），初始状态 pending
func NewTransaction(id, orderID, orderRef string, amount float64, currency string) (*Transaction, error) {
	// 业务规则校验
	if id == "" {
		return nil, ErrInvalidTransactionID
	}
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if orderRef == "" {
		return nil, ErrInvalidOrderRef
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	now := time.Now()
	return &Transaction{
		ID:             id,
		OrderID:        orderID,
		OrderRef:       orderRef,
		PaymentGateway: GatewayName,
		Amount:         amount,
		Currency:       currency,
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// IsTerminal 流水是否已到终态（终态不可被任何渠道回退）
func (t *Transaction) IsTerminal() bool {
	return t.Status != StatusPending
}
