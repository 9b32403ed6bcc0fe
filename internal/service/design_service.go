package service

import (
	"errors"
	"strings"

	"github.com/bloomfolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrDesignNotFound     = errors.New("design not found")
	ErrDesignTitleMissing = errors.New("design title is required")
)

// DesignService 负责维护设计作品画廊
type DesignService struct {
	db *gorm.DB
}

// DesignInput 描述创建或更新设计作品时可设置的字段
type DesignInput struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	IsPublished bool
	SortOrder   int
}

// NewDesignService 构造 DesignService
func NewDesignService(gdb *gorm.DB) *DesignService {
	return &DesignService{db: gdb}
}

// ListAll 返回全部设计作品，按排序值升序
func (s *DesignService) ListAll() ([]db.Design, error) {
	var items []db.Design
	if err := s.db.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListPublished 返回已公开的设计作品
// limit <= 0 表示不限制数量
func (s *DesignService) ListPublished(limit int) ([]db.Design, error) {
	query := s.db.Where("is_published = ?", true).Order("sort_order ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var items []db.Design
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get 根据主键获取设计作品
func (s *DesignService) Get(id uint) (*db.Design, error) {
	var item db.Design
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDesignNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create 新建设计作品
func (s *DesignService) Create(input DesignInput) (*db.Design, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrDesignTitleMissing
	}

	item := db.Design{
		Title:       strings.TrimSpace(input.Title),
		Description: optionalText(input.Description),
		ImageURL:    optionalText(input.ImageURL),
		Category:    optionalText(input.Category),
		IsPublished: input.IsPublished,
		SortOrder:   input.SortOrder,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update 更新指定设计作品
func (s *DesignService) Update(id uint, input DesignInput) (*db.Design, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrDesignTitleMissing
	}

	var item db.Design
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDesignNotFound
		}
		return nil, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = optionalText(input.Description)
	item.ImageURL = optionalText(input.ImageURL)
	item.Category = optionalText(input.Category)
	item.IsPublished = input.IsPublished
	item.SortOrder = input.SortOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete 删除指定设计作品
func (s *DesignService) Delete(id uint) error {
	var item db.Design
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDesignNotFound
		}
		return err
	}
	return s.db.Unscoped().Delete(&item).Error
}

// SetPublished 单字段更新公开状态
func (s *DesignService) SetPublished(id uint, published bool) error {
	result := s.db.Model(&db.Design{}).Where("id = ?", id).Update("is_published", published)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDesignNotFound
	}
	return nil
}
