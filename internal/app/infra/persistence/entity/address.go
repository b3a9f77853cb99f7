package entity

import "time"

// GuestAddress 用户地址实体
type GuestAddress struct {
	ID            string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	UserID        string    `gorm:"column:user_id;type:varchar(64);not null;index:idx_user"`
	AddressLine1  string    `gorm:"column:address_line_1;type:varchar(255);not null"`
	AddressLine2  string    `gorm:"column:address_line_2;type:varchar(255)"`
	City          string    `gorm:"column:city;type:varchar(64);not null"`
	State         string    `gorm:"column:state;type:varchar(64);not null"`
	PostalCode    string    `gorm:"column:postal_code;type:varchar(16);not null"`
	Country       string    `gorm:"column:country;type:varchar(64);not null;default:'India'"`
	Latitude      *float64  `gorm:"column:latitude"`
	Longitude     *float64  `gorm:"column:longitude"`
	GooglePlaceID string    `gorm:"column:google_place_id;type:varchar(128)"`
	IsDefault     bool      `gorm:"column:is_default;not null;default:false"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (GuestAddress) TableName() string {
	return "guest_addresses"
}
