package rpservice

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/persistence/entity"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
)

// ServiceRepositoryImpl 服务目录仓储实现（MySQL）
type ServiceRepositoryImpl struct {
	db *gorm.DB
}

// NewServiceRepository 创建服务目录仓储实例
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

// ListActive 查询所有上架服务
func (r *ServiceRepositoryImpl) ListActive(ctx context.Context) ([]*etservice.Service, error) {
	var pos []entity.Service
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	services := make([]*etservice.Service, 0, len(pos))
	for i := range pos {
		services = append(services, toDomainModel(&pos[i]))
	}
	return services, nil
}

// GetActiveByID 根据ID查询上架服务（下架服务视为不存在）
func (r *ServiceRepositoryImpl) GetActiveByID(ctx context.Context, serviceID string) (*etservice.Service, error) {
	var po entity.Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", serviceID, true).
		First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrServiceNotFound
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// toDomainModel GORM 模型转换为领域对象
func toDomainModel(po *entity.Service) *etservice.Service {
	return &etservice.Service{
		ID:              po.ID,
		Name:            po.Name,
		Description:     po.Description,
		Price:           po.Price,
		DurationMinutes: po.DurationMinutes,
		CategoryID:      po.CategoryID,
		ImageURL:        po.ImageURL,
		IsActive:        po.IsActive,
		CreatedAt:       po.CreatedAt,
		UpdatedAt:       po.UpdatedAt,
	}
}
