package entity

import "time"

// User 用户实体
type User struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	Mobile    string    `gorm:"column:mobile;type:varchar(16);not null;uniqueIndex:uk_mobile"`
	Name      string    `gorm:"column:name;type:varchar(255)"`
	Email     string    `gorm:"column:email;type:varchar(255)"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
