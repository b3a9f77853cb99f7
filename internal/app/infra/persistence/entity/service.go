package entity

import "time"

// Service 服务项目实体
type Service struct {
	ID              string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	Name            string    `gorm:"column:name;type:varchar(255);not null"`
	Description     string    `gorm:"column:description;type:text"`
	Price           float64   `gorm:"column:price;type:decimal(10,2);not null"`
	DurationMinutes int       `gorm:"column:duration_minutes;not null"`
	CategoryID      string    `gorm:"column:category_id;type:varchar(64)"`
	ImageURL        string    `gorm:"column:image_url;type:varchar(512)"`
	IsActive        bool      `gorm:"column:is_active;not null;default:true;index:idx_active"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Service) TableName() string {
	return "services"
}
