package entity

import "time"

// OrderItem 订单明细实体（单商品模型，每单一条）
type OrderItem struct {
	ID         string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	OrderID    string    `gorm:"column:order_id;type:varchar(64);not null;index:idx_order"`
	ServiceID  string    `gorm:"column:service_id;type:varchar(64);not null"`
	Quantity   int       `gorm:"column:quantity;not null;default:1"`
	UnitPrice  float64   `gorm:"column:unit_price;type:decimal(10,2);not null"`
	TotalPrice float64   `gorm:"column:total_price;type:decimal(10,2);not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
