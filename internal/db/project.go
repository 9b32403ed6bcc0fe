package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// TechStack 以 JSON 文本形式持久化技术栈列表
type TechStack []string

// Value 实现 driver.Valuer
func (t TechStack) Value() (driver.Value, error) {
	if t == nil {
		t = TechStack{}
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan 实现 sql.Scanner
func (t *TechStack) Scan(value interface{}) error {
	if value == nil {
		*t = TechStack{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("unsupported tech stack column type")
	}
}

// Project 定义项目作品模型
type Project struct {
	gorm.Model
	Title        string    `gorm:"size:100;not null" json:"title"`
	Description  *string   `gorm:"type:text" json:"description"`
	ThumbnailURL *string   `gorm:"size:255" json:"thumbnail_url"`
	DetailURL    *string   `gorm:"size:255" json:"detail_url"`
	DocURL       *string   `gorm:"size:255" json:"doc_url"`
	TechStack    TechStack `gorm:"type:text" json:"tech_stack"`
	IsPublished  bool      `gorm:"default:true" json:"is_published"`
	SortOrder    int       `gorm:"default:0" json:"sort_order"`
}
