package db

import "gorm.io/gorm"

// GuestbookEntry 定义访客留言模型
// 前台只允许追加，后台只允许删除，不存在更新路径
type GuestbookEntry struct {
	gorm.Model
	AuthorName string  `gorm:"size:50;not null" json:"author_name"`
	Message    string  `gorm:"type:text;not null" json:"message"`
	Hobby      *string `gorm:"size:100" json:"hobby"`
	SNSAccount *string `gorm:"size:100" json:"sns_account"`
}

// TableName 返回自定义表名
func (GuestbookEntry) TableName() string {
	return "guestbook_entries"
}
