package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bloomfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrBasicInfoNotFound 在单行基本信息缺失时返回
	ErrBasicInfoNotFound = errors.New("basic info not found")
	// ErrBasicInfoNameMissing 在姓名为空时返回
	ErrBasicInfoNameMissing = errors.New("basic info name is required")
)

// BasicInfoService 负责读取与更新单行基本信息
// 该记录在启动时补齐，应用不会新增或删除
type BasicInfoService struct {
	db *gorm.DB
}

// NewBasicInfoService 构造 BasicInfoService
func NewBasicInfoService(gdb *gorm.DB) *BasicInfoService {
	return &BasicInfoService{db: gdb}
}

// BasicInfoInput 描述更新基本信息时可设置的字段
type BasicInfoInput struct {
	Name         string
	Education    string
	Major        string
	Experience   string
	PhotoURL     string
	ResumeURL    string
	PortfolioURL string
}

// Get 返回单行基本信息
func (s *BasicInfoService) Get() (*db.BasicInfo, error) {
	var info db.BasicInfo
	if err := s.db.First(&info, db.BasicInfoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBasicInfoNotFound
		}
		return nil, fmt.Errorf("get basic info: %w", err)
	}
	return &info, nil
}

// Update 更新单行基本信息
func (s *BasicInfoService) Update(input BasicInfoInput) (*db.BasicInfo, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrBasicInfoNameMissing
	}

	var info db.BasicInfo
	if err := s.db.First(&info, db.BasicInfoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBasicInfoNotFound
		}
		return nil, fmt.Errorf("find basic info: %w", err)
	}

	info.Name = strings.TrimSpace(input.Name)
	info.Education = optionalText(input.Education)
	info.Major = optionalText(input.Major)
	info.Experience = optionalText(input.Experience)
	info.PhotoURL = optionalText(input.PhotoURL)
	info.ResumeURL = optionalText(input.ResumeURL)
	info.PortfolioURL = optionalText(input.PortfolioURL)

	if err := s.db.Save(&info).Error; err != nil {
		return nil, fmt.Errorf("update basic info: %w", err)
	}
	return &info, nil
}
