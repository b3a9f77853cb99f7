package svcatalog

import (
	"context"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpservice"
)

// CatalogService 服务目录（只读查询，仅暴露上架服务）
type CatalogService struct {
	serviceRepo rpservice.ServiceRepository
}

// NewCatalogService 创建目录服务实例
func NewCatalogService(serviceRepo rpservice.ServiceRepository) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
	}
}

// ListServices 查询所有上架服务
func (s *CatalogService) ListServices(ctx context.Context) ([]*etservice.Service, error) {
	return s.serviceRepo.ListActive(ctx)
}

// GetService 查询单个上架服务（下架或不存在返回 ErrServiceNotFound）
func (s *CatalogService) GetService(ctx context.Context, serviceID string) (*etservice.Service, error) {
	return s.serviceRepo.GetActiveByID(ctx, serviceID)
}
