package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bloomfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrSocialLinkNotFound 在指定的社交链接不存在时返回
	ErrSocialLinkNotFound = errors.New("social link not found")
	// ErrSocialLinkURLMissing 在链接地址为空时返回
	ErrSocialLinkURLMissing = errors.New("social link url is required")
	// ErrSocialLinkPlatformInvalid 在平台不在内置集合内时返回
	ErrSocialLinkPlatformInvalid = errors.New("social link platform is invalid")
)

// 前台内置图标支持的平台集合
var socialPlatforms = map[string]struct{}{
	"github":    {},
	"linkedin":  {},
	"twitter":   {},
	"instagram": {},
	"youtube":   {},
	"email":     {},
	"website":   {},
	"other":     {},
}

// SocialLinkService 负责维护社交链接
type SocialLinkService struct {
	db *gorm.DB
}

// NewSocialLinkService 构造 SocialLinkService
func NewSocialLinkService(gdb *gorm.DB) *SocialLinkService {
	return &SocialLinkService{db: gdb}
}

// SocialLinkInput 描述创建或更新社交链接时可设置的字段
type SocialLinkInput struct {
	Platform  string
	URL       string
	IsActive  bool
	SortOrder int
}

// ListAll 返回全部社交链接，按排序值升序
func (s *SocialLinkService) ListAll() ([]db.SocialLink, error) {
	var items []db.SocialLink
	if err := s.db.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	return items, nil
}

// ListActive 返回启用中的社交链接
func (s *SocialLinkService) ListActive() ([]db.SocialLink, error) {
	var items []db.SocialLink
	if err := s.db.Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list active social links: %w", err)
	}
	return items, nil
}

// Create 新建社交链接
func (s *SocialLinkService) Create(input SocialLinkInput) (*db.SocialLink, error) {
	platform, err := validateSocialLinkInput(input)
	if err != nil {
		return nil, err
	}

	item := db.SocialLink{
		Platform:  platform,
		URL:       strings.TrimSpace(input.URL),
		IsActive:  input.IsActive,
		SortOrder: input.SortOrder,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create social link: %w", err)
	}
	return &item, nil
}

// Update 更新指定社交链接
func (s *SocialLinkService) Update(id uint, input SocialLinkInput) (*db.SocialLink, error) {
	platform, err := validateSocialLinkInput(input)
	if err != nil {
		return nil, err
	}

	var item db.SocialLink
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocialLinkNotFound
		}
		return nil, fmt.Errorf("find social link: %w", err)
	}

	item.Platform = platform
	item.URL = strings.TrimSpace(input.URL)
	item.IsActive = input.IsActive
	item.SortOrder = input.SortOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update social link: %w", err)
	}
	return &item, nil
}

// Delete 删除指定社交链接
func (s *SocialLinkService) Delete(id uint) error {
	var item db.SocialLink
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSocialLinkNotFound
		}
		return fmt.Errorf("find social link: %w", err)
	}
	if err := s.db.Unscoped().Delete(&item).Error; err != nil {
		return fmt.Errorf("delete social link: %w", err)
	}
	return nil
}

// SetActive 单字段更新启用开关
func (s *SocialLinkService) SetActive(id uint, active bool) error {
	result := s.db.Model(&db.SocialLink{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return fmt.Errorf("toggle social link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSocialLinkNotFound
	}
	return nil
}

func validateSocialLinkInput(input SocialLinkInput) (string, error) {
	if strings.TrimSpace(input.URL) == "" {
		return "", ErrSocialLinkURLMissing
	}

	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	if platform == "" {
		platform = "other"
	}
	if _, ok := socialPlatforms[platform]; !ok {
		return "", ErrSocialLinkPlatformInvalid
	}
	return platform, nil
}
