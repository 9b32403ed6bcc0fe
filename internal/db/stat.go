package db

import "gorm.io/gorm"

// Stat 存储按键值维护的站点计数器。
type Stat struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value int    `gorm:"default:0" json:"value"`
}

// TableName 自定义表名以保持命名一致。
func (Stat) TableName() string {
	return "stats"
}

const (
	// StatKeyFlowerCount 表示关于页的送花计数。
	StatKeyFlowerCount = "flower_count"
)
