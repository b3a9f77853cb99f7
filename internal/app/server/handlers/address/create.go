package address

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/request"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// Create 创建地址接口
// POST /api/v1/addresses
func (h *AddressHandler) Create(c *gin.Context) {
	var req request.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	addr, err := h.addressService.CreateAddress(c.Request.Context(), req.ToCreateAddressParams())
	if err != nil {
		if errors.Is(err, errorx.ErrUserNotFound) {
			ginx.NotFound(c, "user not found")
			return
		}
		log.Printf("[ERROR] create address failed: %v", err)
		ginx.InternalError(c, "create address failed")
		return
	}

	ginx.Created(c, response.FromAddress(addr))
}
