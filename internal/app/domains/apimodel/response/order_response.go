package response

// OrderResponse 订单响应
type OrderResponse struct {
	ID             string                 `json:"id"`
	BookingNo      string                 `json:"booking_no"`
	UserID         string                 `json:"user_id"`
	AddressID      *string                `json:"address_id,omitempty"`
	Status         string                 `json:"status"`
	PaymentStatus  string                 `json:"payment_status"`
	Subtotal       float64                `json:"subtotal"`
	DiscountAmount float64                `json:"discount_amount"`
	TotalAmount    float64                `json:"total_amount"`
	ScheduledDate  string                 `json:"scheduled_date"`
	ScheduledTime  string                 `json:"scheduled_time"`
	Notes          string                 `json:"notes,omitempty"`
	Items          []*OrderItemResponse   `json:"items,omitempty"`
	Transactions   []*TransactionResponse `json:"transactions,omitempty"`
	CreatedAt      string                 `json:"created_at"`
}

// OrderItemResponse 订单明细响应
type OrderItemResponse struct {
	ID         string  `json:"id"`
	ServiceID  string  `json:"service_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// TransactionResponse 支付流水响应
type TransactionResponse struct {
	ID                   string  `json:"id"`
	OrderRef             string  `json:"order_ref"`
	PaymentGateway       string  `json:"payment_gateway"`
	Amount               float64 `json:"amount"`
	Currency             string  `json:"currency"`
	Status               string  `json:"status"`
	GatewayTransactionID string  `json:"gateway_transaction_id,omitempty"`
	CreatedAt            string  `json:"created_at"`
}
