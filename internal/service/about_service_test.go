package service

import (
	"errors"
	"testing"

	"github.com/bloomfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) func() {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.BasicInfo{},
		&db.AboutSection{},
		&db.Design{},
		&db.Project{},
		&db.SocialLink{},
		&db.GuestbookEntry{},
		&db.Stat{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestAboutServiceCreateNormalizesFields(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAboutService(db.DB)
	created, err := svc.Create(AboutSectionInput{Title: "  My Story  ", Content: "   ", SortOrder: 2})
	if err != nil {
		t.Fatalf("create section failed: %v", err)
	}

	if created.Title != "My Story" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.Content != nil {
		t.Fatalf("expected whitespace-only content to persist as nil, got %q", *created.Content)
	}
	if created.ShowInHome {
		t.Fatalf("expected show_in_home to default to false")
	}
}

func TestAboutServiceRejectsEmptyTitle(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAboutService(db.DB)
	if _, err := svc.Create(AboutSectionInput{Title: "   "}); !errors.Is(err, ErrAboutSectionTitleMissing) {
		t.Fatalf("expected ErrAboutSectionTitleMissing, got %v", err)
	}

	var count int64
	db.DB.Model(&db.AboutSection{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected rejected create to write nothing, found %d rows", count)
	}
}

func TestAboutServiceListOrdering(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAboutService(db.DB)
	if _, err := svc.Create(AboutSectionInput{Title: "Second", SortOrder: 5}); err != nil {
		t.Fatalf("create section failed: %v", err)
	}
	if _, err := svc.Create(AboutSectionInput{Title: "First", SortOrder: 1, ShowInHome: true}); err != nil {
		t.Fatalf("create section failed: %v", err)
	}
	if _, err := svc.Create(AboutSectionInput{Title: "Third", SortOrder: 9}); err != nil {
		t.Fatalf("create section failed: %v", err)
	}

	items, err := svc.ListAll()
	if err != nil {
		t.Fatalf("list sections failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(items))
	}
	if items[0].Title != "First" || items[1].Title != "Second" || items[2].Title != "Third" {
		t.Fatalf("expected sections ordered by sort_order ascending, got %q %q %q", items[0].Title, items[1].Title, items[2].Title)
	}

	home, err := svc.ListHome()
	if err != nil {
		t.Fatalf("list home sections failed: %v", err)
	}
	if len(home) != 1 || home[0].Title != "First" {
		t.Fatalf("expected only the home-visible section, got %d", len(home))
	}
}

func TestAboutServiceToggleShowInHome(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAboutService(db.DB)
	created, err := svc.Create(AboutSectionInput{Title: "My Story"})
	if err != nil {
		t.Fatalf("create section failed: %v", err)
	}

	if err := svc.SetShowInHome(created.ID, true); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if err := svc.SetShowInHome(created.ID, false); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	item, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get section failed: %v", err)
	}
	if item.ShowInHome {
		t.Fatalf("expected two toggles to restore the original value")
	}

	if err := svc.SetShowInHome(9999, true); !errors.Is(err, ErrAboutSectionNotFound) {
		t.Fatalf("expected ErrAboutSectionNotFound, got %v", err)
	}
}
