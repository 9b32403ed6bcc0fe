package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bloomfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrGuestbookEntryNotFound 在指定留言不存在时返回
	ErrGuestbookEntryNotFound = errors.New("guestbook entry not found")
	// ErrGuestbookInvalidInput 在昵称或留言内容为空时返回
	ErrGuestbookInvalidInput = errors.New("invalid guestbook input")
)

// GuestbookService 负责访客留言的写入与管理
// 留言只增不改：前台追加，后台删除
type GuestbookService struct {
	db *gorm.DB
}

// NewGuestbookService 构造 GuestbookService
func NewGuestbookService(gdb *gorm.DB) *GuestbookService {
	return &GuestbookService{db: gdb}
}

// GuestbookInput 描述访客提交的留言字段
type GuestbookInput struct {
	AuthorName string
	Message    string
	Hobby      string
	SNSAccount string
}

// ListAll 返回全部留言，按创建时间降序
func (s *GuestbookService) ListAll() ([]db.GuestbookEntry, error) {
	var items []db.GuestbookEntry
	if err := s.db.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list guestbook entries: %w", err)
	}
	return items, nil
}

// ListRecent 返回最近的留言，按创建时间降序
func (s *GuestbookService) ListRecent(limit int) ([]db.GuestbookEntry, error) {
	query := s.db.Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var items []db.GuestbookEntry
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list recent guestbook entries: %w", err)
	}
	return items, nil
}

// Create 追加一条访客留言
func (s *GuestbookService) Create(input GuestbookInput) (*db.GuestbookEntry, error) {
	author := strings.TrimSpace(input.AuthorName)
	message := strings.TrimSpace(input.Message)
	if author == "" {
		return nil, fmt.Errorf("%w: author name is required", ErrGuestbookInvalidInput)
	}
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrGuestbookInvalidInput)
	}

	entry := db.GuestbookEntry{
		AuthorName: author,
		Message:    message,
		Hobby:      optionalText(input.Hobby),
		SNSAccount: optionalText(input.SNSAccount),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("create guestbook entry: %w", err)
	}
	return &entry, nil
}

// Delete 删除指定留言
func (s *GuestbookService) Delete(id uint) error {
	var entry db.GuestbookEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGuestbookEntryNotFound
		}
		return fmt.Errorf("find guestbook entry: %w", err)
	}
	if err := s.db.Unscoped().Delete(&entry).Error; err != nil {
		return fmt.Errorf("delete guestbook entry: %w", err)
	}
	return nil
}
