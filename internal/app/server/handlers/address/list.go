package address

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// ListByUser 查询用户地址列表接口，默认地址排前
// GET /api/v1/addresses/:userId
func (h *AddressHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		ginx.BadRequest(c, "user id required")
		return
	}

	addresses, err := h.addressService.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] list addresses failed: %v", err)
		ginx.InternalError(c, "list addresses failed")
		return
	}

	ginx.Success(c, response.FromAddresses(addresses))
}
