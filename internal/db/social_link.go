package db

import "gorm.io/gorm"

// SocialLink 保存前台展示的社交链接
// Platform 限定为内置平台集合，IsActive 控制是否展示
type SocialLink struct {
	gorm.Model
	Platform  string `gorm:"size:50;not null" json:"platform"`
	URL       string `gorm:"size:255;not null" json:"url"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}
