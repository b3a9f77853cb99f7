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

// Update 更新地址接口（部分更新）
// PUT /api/v1/addresses/:id
func (h *AddressHandler) Update(c *gin.Context) {
	addressID := c.Param("id")
	if addressID == "" {
		ginx.BadRequest(c, "address id required")
		return
	}

	var req request.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		ginx.BadRequest(c, "no fields to update")
		return
	}

	addr, err := h.addressService.UpdateAddress(c.Request.Context(), addressID, updates)
	if err != nil {
		if errors.Is(err, errorx.ErrAddressNotFound) {
			ginx.NotFound(c, "address not found")
			return
		}
		log.Printf("[ERROR] update address failed: %v", err)
		ginx.InternalError(c, "update address failed")
		return
	}

	ginx.Success(c, response.FromAddress(addr))
}
