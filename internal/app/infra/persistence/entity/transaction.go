package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction 支付流水实体
// order_ref 是对外可见的订单号（网关 correlation 键），建独立唯一索引，
// 在创建时写入，不再依赖查询 gateway_response JSON
type Transaction struct {
	ID                   string         `gorm:"column:id;primaryKey;type:varchar(64)"`
	OrderID              string         `gorm:"column:order_id;type:varchar(64);not null;index:idx_order"`
	OrderRef             string         `gorm:"column:order_ref;type:varchar(128);not null;uniqueIndex:uk_order_ref"`
	PaymentGateway       string         `gorm:"column:payment_gateway;type:varchar(32);not null;default:'Cashfree'"`
	Amount               float64        `gorm:"column:amount;type:decimal(10,2);not null"`
	Currency             string         `gorm:"column:currency;type:varchar(8);not null;default:'INR'"`
	Status               string         `gorm:"column:status;type:varchar(16);not null;default:'pending'"`
	GatewayTransactionID string         `gorm:"column:gateway_transaction_id;type:varchar(128)"`
	GatewayResponse      datatypes.JSON `gorm:"column:gateway_response;type:json"`
	CreatedAt            time.Time      `gorm:"column:created_at;not null"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Transaction) TableName() string {
	return "transactions"
}

// 支付流水状态常量
const (
	TransactionStatusPending   = "pending"
	TransactionStatusSuccess   = "success"
	TransactionStatusFailed    = "failed"
	TransactionStatusCancelled = "cancelled"
)
