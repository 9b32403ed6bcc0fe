package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bloomfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrAboutSectionNotFound 在指定的内容区块不存在时返回
	ErrAboutSectionNotFound = errors.New("about section not found")
	// ErrAboutSectionTitleMissing 在标题为空时返回
	ErrAboutSectionTitleMissing = errors.New("about section title is required")
)

// AboutService 负责维护关于我页面的内容区块
type AboutService struct {
	db *gorm.DB
}

// NewAboutService 构造 AboutService
func NewAboutService(gdb *gorm.DB) *AboutService {
	return &AboutService{db: gdb}
}

// AboutSectionInput 描述创建或更新内容区块时可设置的字段
type AboutSectionInput struct {
	Title      string
	Content    string
	ShowInHome bool
	SortOrder  int
}

// ListAll 返回全部内容区块，按排序值升序
func (s *AboutService) ListAll() ([]db.AboutSection, error) {
	var items []db.AboutSection
	if err := s.db.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list about sections: %w", err)
	}
	return items, nil
}

// ListHome 返回标记为首页展示的内容区块
func (s *AboutService) ListHome() ([]db.AboutSection, error) {
	var items []db.AboutSection
	if err := s.db.Where("show_in_home = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list home about sections: %w", err)
	}
	return items, nil
}

// Get 根据主键获取内容区块
func (s *AboutService) Get(id uint) (*db.AboutSection, error) {
	var item db.AboutSection
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutSectionNotFound
		}
		return nil, fmt.Errorf("get about section: %w", err)
	}
	return &item, nil
}

// Create 新建内容区块
func (s *AboutService) Create(input AboutSectionInput) (*db.AboutSection, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrAboutSectionTitleMissing
	}

	item := db.AboutSection{
		Title:      strings.TrimSpace(input.Title),
		Content:    optionalText(input.Content),
		ShowInHome: input.ShowInHome,
		SortOrder:  input.SortOrder,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create about section: %w", err)
	}
	return &item, nil
}

// Update 更新指定内容区块
func (s *AboutService) Update(id uint, input AboutSectionInput) (*db.AboutSection, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrAboutSectionTitleMissing
	}

	var item db.AboutSection
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutSectionNotFound
		}
		return nil, fmt.Errorf("find about section: %w", err)
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Content = optionalText(input.Content)
	item.ShowInHome = input.ShowInHome
	item.SortOrder = input.SortOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update about section: %w", err)
	}
	return &item, nil
}

// Delete 删除指定内容区块
func (s *AboutService) Delete(id uint) error {
	var item db.AboutSection
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAboutSectionNotFound
		}
		return fmt.Errorf("find about section: %w", err)
	}
	if err := s.db.Unscoped().Delete(&item).Error; err != nil {
		return fmt.Errorf("delete about section: %w", err)
	}
	return nil
}

// SetShowInHome 单字段更新首页展示开关
func (s *AboutService) SetShowInHome(id uint, show bool) error {
	result := s.db.Model(&db.AboutSection{}).Where("id = ?", id).Update("show_in_home", show)
	if result.Error != nil {
		return fmt.Errorf("toggle about section: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAboutSectionNotFound
	}
	return nil
}
