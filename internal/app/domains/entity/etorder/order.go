package etorder

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidOrderID   = errors.New("order ID cannot be empty")
	ErrInvalidUserID    = errors.New("user ID cannot be empty")
	ErrInvalidBookingNo = errors.New("booking number cannot be empty")
	ErrInvalidAmount    = errors.New("order amounts must be non-negative")
	ErrAmountMismatch   = errors.New("total must equal subtotal minus discount")
)

// Order 预约订单聚合根（领域对象）
type Order struct {
	ID             string        // 订单ID (UUID)
	BookingNo      string        // 预约单号（对用户展示）
	UserID         string        // 用户ID
	GuestAddressID *string       // 地址ID（可选）
	Status         OrderStatus   // 订单状态
	PaymentStatus  PaymentStatus // 支付状态
	Subtotal       float64       // 小计
	DiscountAmount float64       // 优惠金额
	TotalAmount    float64       // 应付总额
	ScheduledDate  string        // 预约日期 YYYY-MM-DD
	ScheduledTime  string        // 预约时间 HH:MM
	Notes          string        // 备注
	Items          []*Item       // 订单明细
	CreatedAt      time.Time     // 创建时间
	UpdatedAt      time.Time     // 更新时间
}

// OrderStatus 订单状态
// pending → confirmed | cancelled，confirmed/cancelled 为终态
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus 订单支付状态
// pending → paid | failed，paid/failed 为终态
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Item 订单明细（值对象）
type Item struct {
	ID         string  // 明细ID (UUID)
	ServiceID  string  // 服务ID
	Quantity   int     // 数量
	UnitPrice  float64 // 单价
	TotalPrice float64 // 小计
}

// NewOrder 创建订单（工厂方法），初始状态 pending/pending
func NewOrder(id, bookingNo, userID string, addressID *string, subtotal, discount float64, scheduledDate, scheduledTime, notes string) (*Order, error) {
	// 业务规则校验
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	if bookingNo == "" {
		return nil, ErrInvalidBookingNo
	}
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if subtotal < 0 || discount < 0 || subtotal < discount {
		return nil, ErrInvalidAmount
	}

	now := time.Now()
	return &Order{
		ID:             id,
		BookingNo:      bookingNo,
		UserID:         userID,
		GuestAddressID: addressID,
		Status:         OrderStatusPending,
		PaymentStatus:  PaymentStatusPending,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TotalAmount:    subtotal - discount,
		ScheduledDate:  scheduledDate,
		ScheduledTime:  scheduledTime,
		Notes:          notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// IsTerminal 订单是否已到终态
func (o *Order) IsTerminal() bool {
	return o.Status != OrderStatusPending
}
