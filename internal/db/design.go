package db

import "gorm.io/gorm"

// Design 定义设计作品模型
// IsPublished 控制是否在前台画廊展示
type Design struct {
	gorm.Model
	Title       string  `gorm:"size:100;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	ImageURL    *string `gorm:"size:255" json:"image_url"`
	Category    *string `gorm:"size:50" json:"category"`
	IsPublished bool    `gorm:"default:true" json:"is_published"`
	SortOrder   int     `gorm:"default:0" json:"sort_order"`
}
