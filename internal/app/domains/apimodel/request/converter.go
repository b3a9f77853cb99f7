package request

import (
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svpayment"
)

// ToCreateAddressParams 将 Request DTO 转换为服务层参数
func (r *CreateAddressRequest) ToCreateAddressParams() *svaddress.CreateAddressParams {
	return &svaddress.CreateAddressParams{
		UserID:        r.UserID,
		AddressLine1:  r.AddressLine1,
		AddressLine2:  r.AddressLine2,
		City:          r.City,
		State:         r.State,
		PostalCode:    r.PostalCode,
		Country:       r.Country,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		GooglePlaceID: r.GooglePlaceID,
		IsDefault:     r.IsDefault,
	}
}

// ToCreateOrderParams 将 Request DTO 转换为服务层参数
func (r *CreateOrderRequest) ToCreateOrderParams() *svorder.CreateOrderParams {
	return &svorder.CreateOrderParams{
		UserID:        r.UserID,
		ServiceID:     r.ServiceID,
		AddressID:     r.AddressID,
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
		Notes:         r.Notes,
	}
}

// ToInitiateRequest 将 Request DTO 转换为支付发起参数
func (r *CreatePaymentOrderRequest) ToInitiateRequest() *svpayment.InitiateRequest {
	req := &svpayment.InitiateRequest{
		OrderRef:      r.OrderRef,
		UserID:        r.UserID,
		ServiceID:     r.ServiceID,
		AddressID:     r.AddressID,
		Amount:        r.Amount,
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
	}
	if r.Customer != nil {
		req.Customer = svpayment.CustomerInfo{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		}
	}
	return req
}
