package address

import "github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svaddress"

// AddressHandler 地址 HTTP 处理器
type AddressHandler struct {
	addressService *svaddress.AddressService
}

// NewAddressHandler 创建地址处理器实例
func NewAddressHandler(addressService *svaddress.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}
