package rpaddress

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/persistence/entity"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
)

// AddressRepositoryImpl 地址仓储实现（MySQL）
type AddressRepositoryImpl struct {
	db *gorm.DB
}

// NewAddressRepository 创建地址仓储实例
func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &AddressRepositoryImpl{db: db}
}

// Create 创建地址
func (r *AddressRepositoryImpl) Create(ctx context.Context, address *etaddress.Address) error {
	return r.db.WithContext(ctx).Create(toGormModel(address)).Error
}

// GetByID 根据ID查询地址
func (r *AddressRepositoryImpl) GetByID(ctx context.Context, addressID string) (*etaddress.Address, error) {
	var po entity.GuestAddress
	err := r.db.WithContext(ctx).Where("id = ?", addressID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrAddressNotFound
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// GetByIDAndUser 根据ID和用户ID查询（校验地址归属该用户）
func (r *AddressRepositoryImpl) GetByIDAndUser(ctx context.Context, addressID, userID string) (*etaddress.Address, error) {
	var po entity.GuestAddress
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrAddressNotFound
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// ListByUser 查询用户的地址列表（默认地址在前，其后按创建时间倒序）
func (r *AddressRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*etaddress.Address, error) {
	var pos []entity.GuestAddress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	addresses := make([]*etaddress.Address, 0, len(pos))
	for i := range pos {
		addresses = append(addresses, toDomainModel(&pos[i]))
	}
	return addresses, nil
}

// Update 更新地址字段
func (r *AddressRepositoryImpl) Update(ctx context.Context, addressID string, updates map[string]interface{}) (*etaddress.Address, error) {
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entity.GuestAddress{}).
		Where("id = ?", addressID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errorx.ErrAddressNotFound
	}

	return r.GetByID(ctx, addressID)
}

// UnsetDefaults 取消用户其它默认地址
func (r *AddressRepositoryImpl) UnsetDefaults(ctx context.Context, userID, exceptID string) error {
	query := r.db.WithContext(ctx).
		Model(&entity.GuestAddress{}).
		Where("user_id = ?", userID)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	return query.Update("is_default", false).Error
}

// toGormModel 领域对象转换为 GORM 模型
func toGormModel(address *etaddress.Address) *entity.GuestAddress {
	return &entity.GuestAddress{
		ID:            address.ID,
		UserID:        address.UserID,
		AddressLine1:  address.AddressLine1,
		AddressLine2:  address.AddressLine2,
		City:          address.City,
		State:         address.State,
		PostalCode:    address.PostalCode,
		Country:       address.Country,
		Latitude:      address.Latitude,
		Longitude:     address.Longitude,
		GooglePlaceID: address.GooglePlaceID,
		IsDefault:     address.IsDefault,
		CreatedAt:     address.CreatedAt,
		UpdatedAt:     address.UpdatedAt,
	}
}

// toDomainModel GORM 模型转换为领域对象
func toDomainModel(po *entity.GuestAddress) *etaddress.Address {
	return &etaddress.Address{
		ID:            po.ID,
		UserID:        po.UserID,
		AddressLine1:  po.AddressLine1,
		AddressLine2:  po.AddressLine2,
		City:          po.City,
		State:         po.State,
		PostalCode:    po.PostalCode,
		Country:       po.Country,
		Latitude:      po.Latitude,
		Longitude:     po.Longitude,
		GooglePlaceID: po.GooglePlaceID,
		IsDefault:     po.IsDefault,
		CreatedAt:     po.CreatedAt,
		UpdatedAt:     po.UpdatedAt,
	}
}
