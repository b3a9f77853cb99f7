package response

import (
	"time"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etslot"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/ettransaction"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svpayment"
)

// FromUser 将领域对象转换为 Response DTO
func FromUser(user *etuser.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Mobile:    user.Mobile,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// FromAddress 将领域对象转换为 Response DTO
func FromAddress(address *etaddress.Address) *AddressResponse {
	return &AddressResponse{
		ID:            address.ID,
		UserID:        address.UserID,
		AddressLine1:  address.AddressLine1,
		AddressLine2:  address.AddressLine2,
		City:          address.City,
		State:         address.State,
		PostalCode:    address.PostalCode,
		Country:       address.Country,
		Latitude:      address.Latitude,
		Longitude:     address.Longitude,
		GooglePlaceID: address.GooglePlaceID,
		IsDefault:     address.IsDefault,
		CreatedAt:     address.CreatedAt.Format(time.RFC3339),
	}
}

// FromAddresses 批量转换地址列表
func FromAddresses(addresses []*etaddress.Address) []*AddressResponse {
	result := make([]*AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		result = append(result, FromAddress(a))
	}
	return result
}

// FromService 将领域对象转换为 Response DTO
func FromService(svc *etservice.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
		CategoryID:      svc.CategoryID,
		ImageURL:        svc.ImageURL,
	}
}

// FromServices 批量转换服务列表
func FromServices(services []*etservice.Service) []*ServiceResponse {
	result := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, FromService(s))
	}
	return result
}

// FromSlots 将时段列表转换为 Response DTO
func FromSlots(slots []*etslot.Slot, locality, date string) *SlotListResponse {
	result := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, &SlotResponse{
			ID:              s.ID,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			Date:            s.Date,
			Locality:        s.Locality,
			IsAvailable:     s.IsAvailable,
			MaxCapacity:     s.MaxCapacity,
			CurrentBookings: s.CurrentBookings,
			Period:          s.Period,
		})
	}
	return &SlotListResponse{
		Slots:    result,
		Locality: locality,
		Date:     date,
		Count:    len(result),
	}
}

// FromOrder 将订单领域对象转换为 Response DTO
func FromOrder(order *etorder.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:             order.ID,
		BookingNo:      order.BookingNo,
		UserID:         order.UserID,
		AddressID:      order.GuestAddressID,
		Status:         string(order.Status),
		PaymentStatus:  string(order.PaymentStatus),
		Subtotal:       order.Subtotal,
		DiscountAmount: order.DiscountAmount,
		TotalAmount:    order.TotalAmount,
		ScheduledDate:  order.ScheduledDate,
		ScheduledTime:  order.ScheduledTime,
		Notes:          order.Notes,
		CreatedAt:      order.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, &OrderItemResponse{
			ID:         item.ID,
			ServiceID:  item.ServiceID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return resp
}

// FromOrders 批量转换订单列表
func FromOrders(orders []*etorder.Order) []*OrderResponse {
	result := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromOrder(o))
	}
	return result
}

// FromTransaction 将流水领域对象转换为 Response DTO
func FromTransaction(txn *ettransaction.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:                   txn.ID,
		OrderRef:             txn.OrderRef,
		PaymentGateway:       txn.PaymentGateway,
		Amount:               txn.Amount,
		Currency:             txn.Currency,
		Status:               string(txn.Status),
		GatewayTransactionID: txn.GatewayTransactionID,
		CreatedAt:            txn.CreatedAt.Format(time.RFC3339),
	}
}

// FromOrderWithTransactions 订单详情（含支付流水）
func FromOrderWithTransactions(order *etorder.Order, transactions []*ettransaction.Transaction) *OrderResponse {
	resp := FromOrder(order)
	for _, t := range transactions {
		resp.Transactions = append(resp.Transactions, FromTransaction(t))
	}
	return resp
}

// FromInitiateResult 将支付发起结果转换为 Response DTO
func FromInitiateResult(result *svpayment.InitiateResult) *CreatePaymentOrderResponse {
	return &CreatePaymentOrderResponse{
		PaymentSessionID: result.PaymentSessionID,
		ReturnURL:        result.ReturnURL,
		OrderID:          result.OrderID,
		BookingNo:        result.BookingNo,
		TransactionID:    result.TransactionID,
	}
}

// FromOutcomeSummary 将核验结果转换为 Response DTO
func FromOutcomeSummary(summary *svpayment.OutcomeSummary) *VerifyPaymentResponse {
	return &VerifyPaymentResponse{
		OrderRef:             summary.OrderRef,
		Outcome:              string(summary.Outcome),
		OrderID:              summary.OrderID,
		BookingNo:            summary.BookingNo,
		OrderStatus:          string(summary.OrderStatus),
		PaymentStatus:        string(summary.PaymentStatus),
		TransactionID:        summary.TransactionID,
		TransactionStatus:    string(summary.TransactionStatus),
		GatewayOrderStatus:   summary.GatewayOrderStatus,
		GatewayPaymentStatus: summary.GatewayPaymentStatus,
		CFOrderID:            summary.CFOrderID,
		Amount:               summary.Amount,
		PaymentTime:          summary.PaymentTime,
	}
}
