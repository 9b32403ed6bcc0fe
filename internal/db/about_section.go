package db

import "gorm.io/gorm"

// AboutSection 定义关于我页面的内容区块
// ShowInHome 标记是否同时出现在首页
// SortOrder 值越小越靠前
type AboutSection struct {
	gorm.Model
	Title      string  `gorm:"size:100;not null" json:"title"`
	Content    *string `gorm:"type:text" json:"content"`
	ShowInHome bool    `gorm:"default:false" json:"show_in_home"`
	SortOrder  int     `gorm:"default:0" json:"sort_order"`
}

// TableName 返回自定义表名
func (AboutSection) TableName() string {
	return "about_sections"
}
