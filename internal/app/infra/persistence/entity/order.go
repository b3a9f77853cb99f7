package entity

import "time"

// Order 预约订单实体
type Order struct {
	ID             string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	BookingNo      string    `gorm:"column:booking_no;type:varchar(32);not null;uniqueIndex:uk_booking_no"`
	UserID         string    `gorm:"column:user_id;type:varchar(64);not null;index:idx_user_status"`
	GuestAddressID *string   `gorm:"column:guest_address_id;type:varchar(64)"`
	Status         string    `gorm:"column:status;type:varchar(16);not null;default:'pending';index:idx_user_status"`
	PaymentStatus  string    `gorm:"column:payment_status;type:varchar(16);not null;default:'pending'"`
	Subtotal       float64   `gorm:"column:subtotal;type:decimal(10,2);not null"`
	DiscountAmount float64   `gorm:"column:discount_amount;type:decimal(10,2);not null;default:0"`
	TotalAmount    float64   `gorm:"column:total_amount;type:decimal(10,2);not null"`
	ScheduledDate  string    `gorm:"column:scheduled_date;type:varchar(10);not null"`
	ScheduledTime  string    `gorm:"column:scheduled_time;type:varchar(5);not null"`
	Notes          string    `gorm:"column:notes;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// 订单支付状态常量
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)
