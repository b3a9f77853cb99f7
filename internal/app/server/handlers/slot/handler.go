package slot

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svslot"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// SlotHandler 时段 HTTP 处理器
type SlotHandler struct {
	slotService *svslot.SlotService
}

// NewSlotHandler 创建时段处理器实例
func NewSlotHandler(slotService *svslot.SlotService) *SlotHandler {
	return &SlotHandler{
		slotService: slotService,
	}
}

// List 查询区域可约时段接口
// GET /api/v1/slots/:locality?date=YYYY-MM-DD
func (h *SlotHandler) List(c *gin.Context) {
	locality := c.Param("locality")
	if locality == "" {
		ginx.BadRequest(c, "locality required")
		return
	}

	date := c.Query("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			ginx.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
	} else {
		date = time.Now().Format("2006-01-02")
	}

	slots := h.slotService.ListSlots(locality, date)
	ginx.Success(c, response.FromSlots(slots, locality, date))
}
