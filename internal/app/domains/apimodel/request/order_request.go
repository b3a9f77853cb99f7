package request

// CreateOrderRequest 创建预约单请求
type CreateOrderRequest struct {
	UserID        string  `json:"user_id" binding:"required,uuid"`
	ServiceID     string  `json:"service_id" binding:"required,uuid"`
	AddressID     *string `json:"address_id" binding:"omitempty,uuid"`
	ScheduledDate string  `json:"scheduled_date" binding:"required" example:"2026-09-01"`
	ScheduledTime string  `json:"scheduled_time" binding:"required" example:"10:30"`
	Notes         string  `json:"notes" example:"Ring the bell twice"`
}
