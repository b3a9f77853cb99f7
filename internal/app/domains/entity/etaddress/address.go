package etaddress

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidAddressID = errors.New("address ID cannot be empty")
	ErrInvalidUserID    = errors.New("user ID cannot be empty")
	ErrMissingLine1     = errors.New("address line 1 is required")
	ErrMissingCity      = errors.New("city is required")
	ErrMissingState     = errors.New("state is required")
	ErrMissingPostal    = errors.New("postal code is required")
)

// Address 用户地址实体
type Address struct {
	ID            string    // 地址ID (UUID)
	UserID        string    // 所属用户ID
	AddressLine1  string    // 地址行1
	AddressLine2  string    // 地址行2
	City          string    // 城市
	State         string    // 省/邦
	PostalCode    string    // 邮编
	Country       string    // 国家
	Latitude      *float64  // 纬度
	Longitude     *float64  // 经度
	GooglePlaceID string    // Google Place ID
	IsDefault     bool      // 是否默认地址
	CreatedAt     time.Time // 创建时间
	UpdatedAt     time.Time // 更新时间
}

// NewAddress 创建地址（工厂方法）
func NewAddress(id, userID, line1, line2, city, state, postalCode, country string) (*Address, error) {
	// 业务规则校验
	if id == "" {
		return nil, ErrInvalidAddressID
	}
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if line1 == "" {
		return nil, ErrMissingLine1
	}
	if city == "" {
		return nil, ErrMissingCity
	}
	if state == "" {
		return nil, ErrMissingState
	}
	if postalCode == "" {
		return nil, ErrMissingPostal
	}
	if country == "" {
		country = "India"
	}

	now := time.Now()
	return &Address{
		ID:           id,
		UserID:       userID,
		AddressLine1: line1,
		AddressLine2: line2,
		City:         city,
		State:        state,
		PostalCode:   postalCode,
		Country:      country,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
