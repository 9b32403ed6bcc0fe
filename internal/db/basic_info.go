package db

import (
	"errors"

	"gorm.io/gorm"
)

// BasicInfoID 基本信息为单行记录，固定主键
const BasicInfoID uint = 1

// BasicInfo 保存关于我页面的基本信息
// 应用只会更新该行，不会新增或删除
type BasicInfo struct {
	gorm.Model
	Name         string  `gorm:"size:100;not null" json:"name"`
	Education    *string `gorm:"size:255" json:"education"`
	Major        *string `gorm:"size:255" json:"major"`
	Experience   *string `gorm:"size:255" json:"experience"`
	PhotoURL     *string `gorm:"size:255" json:"photo_url"`
	ResumeURL    *string `gorm:"size:255" json:"resume_url"`
	PortfolioURL *string `gorm:"size:255" json:"portfolio_url"`
}

// TableName 返回自定义表名
func (BasicInfo) TableName() string {
	return "basic_info"
}

// EnsureBasicInfo 在首次启动时补齐单行基本信息记录。
func EnsureBasicInfo() error {
	if DB == nil {
		return errors.New("database not initialized")
	}

	var existing BasicInfo
	if err := DB.First(&existing, BasicInfoID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		seed := BasicInfo{Name: "Portfolio"}
		seed.ID = BasicInfoID
		return DB.Create(&seed).Error
	}

	return nil
}
