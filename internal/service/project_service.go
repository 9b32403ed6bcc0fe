package service

import (
	"errors"
	"strings"

	"github.com/bloomfolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectTitleMissing = errors.New("project title is required")
)

// ProjectService 负责维护项目作品
type ProjectService struct {
	db *gorm.DB
}

// ProjectInput 描述创建或更新项目时可设置的字段
// TechStack 接收表单里逗号分隔的文本
type ProjectInput struct {
	Title       string
	Description string
	Thumbnail   string
	DetailURL   string
	DocURL      string
	TechStack   string
	IsPublished bool
	SortOrder   int
}

// NewProjectService 构造 ProjectService
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// ListAll 返回全部项目，按排序值升序
func (s *ProjectService) ListAll() ([]db.Project, error) {
	var items []db.Project
	if err := s.db.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListPublished 返回已公开的项目
// limit <= 0 表示不限制数量
func (s *ProjectService) ListPublished(limit int) ([]db.Project, error) {
	query := s.db.Where("is_published = ?", true).Order("sort_order ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var items []db.Project
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get 根据主键获取项目
func (s *ProjectService) Get(id uint) (*db.Project, error) {
	var item db.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create 新建项目
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrProjectTitleMissing
	}

	item := db.Project{
		Title:        strings.TrimSpace(input.Title),
		Description:  optionalText(input.Description),
		ThumbnailURL: optionalText(input.Thumbnail),
		DetailURL:    optionalText(input.DetailURL),
		DocURL:       optionalText(input.DocURL),
		TechStack:    splitList(input.TechStack),
		IsPublished:  input.IsPublished,
		SortOrder:    input.SortOrder,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update 更新指定项目
func (s *ProjectService) Update(id uint, input ProjectInput) (*db.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrProjectTitleMissing
	}

	var item db.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = optionalText(input.Description)
	item.ThumbnailURL = optionalText(input.Thumbnail)
	item.DetailURL = optionalText(input.DetailURL)
	item.DocURL = optionalText(input.DocURL)
	item.TechStack = splitList(input.TechStack)
	item.IsPublished = input.IsPublished
	item.SortOrder = input.SortOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete 删除指定项目
func (s *ProjectService) Delete(id uint) error {
	var item db.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	return s.db.Unscoped().Delete(&item).Error
}

// SetPublished 单字段更新公开状态
func (s *ProjectService) SetPublished(id uint, published bool) error {
	result := s.db.Model(&db.Project{}).Where("id = ?", id).Update("is_published", published)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// TechStackText 把存储的列表还原成表单文本
func TechStackText(item db.Project) string {
	return joinList(item.TechStack)
}
