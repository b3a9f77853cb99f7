package catalog

import "github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svcatalog"

// CatalogHandler 服务目录 HTTP 处理器
type CatalogHandler struct {
	catalogService *svcatalog.CatalogService
}

// NewCatalogHandler 创建目录处理器实例
func NewCatalogHandler(catalogService *svcatalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}
