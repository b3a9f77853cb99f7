package request

// CreatePaymentOrderRequest 发起支付请求
// OrderRef 为商户侧订单引用，贯穿网关建单、轮询和 webhook 三条链路
type CreatePaymentOrderRequest struct {
	OrderRef      string           `json:"order_id" binding:"required" example:"order_1756380000_ab12cd34"`
	UserID        string           `json:"user_id" binding:"required,uuid"`
	ServiceID     string           `json:"service_id" binding:"required,uuid"`
	AddressID     *string          `json:"address_id" binding:"omitempty,uuid"`
	Amount        float64          `json:"amount" binding:"required,gt=0" example:"499"`
	ScheduledDate string           `json:"scheduled_date" example:"2026-09-01"`
	ScheduledTime string           `json:"scheduled_time" example:"10:30"`
	Customer      *CustomerDetails `json:"customer" binding:"required"`
}

// CustomerDetails 支付客户信息
type CustomerDetails struct {
	Name  string `json:"name" example:"Ankit"`
	Email string `json:"email" binding:"omitempty,email" example:"ankit@example.com"`
	Phone string `json:"phone" binding:"required" example:"9876543210"`
}
