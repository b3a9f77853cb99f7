package catalog

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/apimodel/response"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/ginx"
)

// List 查询上架服务列表接口
// GET /api/v1/services
func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] list services failed: %v", err)
		ginx.InternalError(c, "list services failed")
		return
	}

	ginx.Success(c, response.FromServices(services))
}

// Get 查询单个上架服务接口
// GET /api/v1/services/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	serviceID := c.Param("id")
	if serviceID == "" {
		ginx.BadRequest(c, "service id required")
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, errorx.ErrServiceNotFound) {
			ginx.NotFound(c, "service not found")
			return
		}
		log.Printf("[ERROR] get service failed: %v", err)
		ginx.InternalError(c, "get service failed")
		return
	}

	ginx.Success(c, response.FromService(svc))
}
