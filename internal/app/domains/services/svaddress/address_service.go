package svaddress

import (
	"context"

	"github.com/google/uuid"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// CreateAddressParams 创建地址参数
type CreateAddressParams struct {
	UserID        string
	AddressLine1  string
	AddressLine2  string
	City          string
	State         string
	PostalCode    string
	Country       string
	Latitude      *float64
	Longitude     *float64
	GooglePlaceID string
	IsDefault     bool
}

// AddressService 地址服务
type AddressService struct {
	addressRepo rpaddress.AddressRepository
	userRepo    rpuser.UserRepository
	logger      logger.Logger
}

// NewAddressService 创建地址服务实例
func NewAddressService(addressRepo rpaddress.AddressRepository, userRepo rpuser.UserRepository, log logger.Logger) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

// CreateAddress 创建地址（用户必须已注册）
// 标记为默认地址时，先取消该用户其它默认地址（同用户至多一个默认）
func (s *AddressService) CreateAddress(ctx context.Context, params *CreateAddressParams) (*etaddress.Address, error) {
	exists, err := s.userRepo.Exists(ctx, params.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errorx.ErrUserNotFound
	}

	address, err := etaddress.NewAddress(
		uuid.New().String(),
		params.UserID,
		params.AddressLine1,
		params.AddressLine2,
		params.City,
		params.State,
		params.PostalCode,
		params.Country,
	)
	if err != nil {
		return nil, err
	}
	address.Latitude = params.Latitude
	address.Longitude = params.Longitude
	address.GooglePlaceID = params.GooglePlaceID
	address.IsDefault = params.IsDefault

	if params.IsDefault {
		if err := s.addressRepo.UnsetDefaults(ctx, params.UserID, address.ID); err != nil {
			return nil, err
		}
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	s.logger.Infof(ctx, "address created: address_id=%s, user_id=%s", address.ID, params.UserID)
	return address, nil
}

// ListAddresses 查询用户地址列表（默认地址排前）
func (s *AddressService) ListAddresses(ctx context.Context, userID string) ([]*etaddress.Address, error) {
	return s.addressRepo.ListByUser(ctx, userID)
}

// UpdateAddress 更新地址字段（部分更新）
// 更新中标记默认时同样取消该地址所属用户的其它默认地址
func (s *AddressService) UpdateAddress(ctx context.Context, addressID string, updates map[string]interface{}) (*etaddress.Address, error) {
	address, err := s.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}

	if isDefault, ok := updates["is_default"].(bool); ok && isDefault {
		if err := s.addressRepo.UnsetDefaults(ctx, address.UserID, address.ID); err != nil {
			return nil, err
		}
	}

	return s.addressRepo.Update(ctx, address.ID, updates)
}
