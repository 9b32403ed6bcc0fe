package service

import (
	"errors"
	"fmt"

	"github.com/bloomfolio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatService 提供按键值维护的站点计数器能力。
type StatService struct {
	db *gorm.DB
}

// NewStatService 构造 StatService。
func NewStatService(gdb *gorm.DB) *StatService {
	return &StatService{db: gdb}
}

// GetFlowerCount 读取送花计数，键不存在时返回 0。
func (s *StatService) GetFlowerCount() (int, error) {
	var stat db.Stat
	if err := s.db.Where("key = ?", db.StatKeyFlowerCount).First(&stat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get flower count: %w", err)
	}
	return stat.Value, nil
}

// IncrementFlowerCount 以 upsert 方式原子递增送花计数并返回新值。
func (s *StatService) IncrementFlowerCount() (int, error) {
	stat := db.Stat{Key: db.StatKeyFlowerCount, Value: 1}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": gorm.Expr("value + 1")}),
	}).Create(&stat).Error; err != nil {
		return 0, fmt.Errorf("increment flower count: %w", err)
	}

	return s.GetFlowerCount()
}
