package etservice

import "time"

// Service 服务项目实体（上门服务目录）
type Service struct {
	ID              string    // 服务ID (UUID)
	Name            string    // 服务名称
	Description     string    // 服务说明
	Price           float64   // 单价
	DurationMinutes int       // 服务时长（分钟）
	CategoryID      string    // 分类ID
	ImageURL        string    // 图片地址
	IsActive        bool      // 是否上架
	CreatedAt       time.Time // 创建时间
	UpdatedAt       time.Time // 更新时间
}
