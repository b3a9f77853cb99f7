package response

// CreatePaymentOrderResponse 发起支付响应
type CreatePaymentOrderResponse struct {
	PaymentSessionID string `json:"payment_session_id"`
	ReturnURL        string `json:"return_url"`
	OrderID          string `json:"order_id"`
	BookingNo        string `json:"booking_no"`
	TransactionID    string `json:"transaction_id"`
}

// VerifyPaymentResponse 支付核验响应（对账后的订单/流水投影）
type VerifyPaymentResponse struct {
	OrderRef             string  `json:"order_ref"`
	Outcome              string  `json:"outcome"`
	OrderID              string  `json:"order_id"`
	BookingNo            string  `json:"booking_no"`
	OrderStatus          string  `json:"order_status"`
	PaymentStatus        string  `json:"payment_status"`
	TransactionID        string  `json:"transaction_id"`
	TransactionStatus    string  `json:"transaction_status"`
	GatewayOrderStatus   string  `json:"gateway_order_status"`
	GatewayPaymentStatus string  `json:"gateway_payment_status"`
	CFOrderID            string  `json:"cf_order_id,omitempty"`
	Amount               float64 `json:"amount"`
	PaymentTime          string  `json:"payment_time,omitempty"`
}
